package metrics

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_CounterGetOrCreate(t *testing.T) {
	r := NewRegistry()

	c1 := r.Counter("kzg.setup.calls")
	c2 := r.Counter("kzg.setup.calls")
	if c1 != c2 {
		t.Fatal("Counter: second call for the same name returned a different instance")
	}

	c1.Inc()
	if c2.Value() != 1 {
		t.Fatalf("Counter: value = %d via second handle, want 1", c2.Value())
	}
}

func TestRegistry_HistogramGetOrCreate(t *testing.T) {
	r := NewRegistry()

	h1 := r.Histogram("kzg.verify.latency_ms")
	h2 := r.Histogram("kzg.verify.latency_ms")
	if h1 != h2 {
		t.Fatal("Histogram: second call for the same name returned a different instance")
	}

	h1.Observe(7)
	if h2.Count() != 1 {
		t.Fatalf("Histogram: count = %d via second handle, want 1", h2.Count())
	}
}

func TestRegistry_CounterAndHistogramAreIndependentNamespaces(t *testing.T) {
	r := NewRegistry()
	r.Counter("kzg.commit.calls").Inc()
	r.Histogram("kzg.commit.calls").Observe(1)

	if r.Counter("kzg.commit.calls").Value() != 1 {
		t.Fatal("counter under a name also used for a histogram lost its value")
	}
	if r.Histogram("kzg.commit.calls").Count() != 1 {
		t.Fatal("histogram under a name also used for a counter lost its value")
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter("kzg.witness.calls").Add(3)
	r.Histogram("kzg.witness.latency_ms").Observe(5)
	r.Histogram("kzg.witness.latency_ms").Observe(15)

	snap := r.Snapshot()

	calls, ok := snap["kzg.witness.calls"].(int64)
	if !ok || calls != 3 {
		t.Fatalf("snapshot counter = %v, want int64(3)", snap["kzg.witness.calls"])
	}

	latency, ok := snap["kzg.witness.latency_ms"].(map[string]interface{})
	if !ok {
		t.Fatalf("snapshot histogram entry has unexpected type %T", snap["kzg.witness.latency_ms"])
	}
	if latency["count"] != int64(2) {
		t.Fatalf("snapshot histogram count = %v, want 2", latency["count"])
	}
	if latency["mean"] != float64(10) {
		t.Fatalf("snapshot histogram mean = %v, want 10", latency["mean"])
	}
}

func TestRegistry_ConcurrentCounterCreation(t *testing.T) {
	r := NewRegistry()
	const goroutines = 32

	results := make([]*Counter, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			results[idx] = r.Counter("kzg.setup.calls")
		}(i)
	}
	wg.Wait()

	first := results[0]
	for i, c := range results {
		if c != first {
			t.Fatalf("goroutine %d got a different Counter instance than goroutine 0", i)
		}
	}
}

func TestRegistry_ManyDistinctNames(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 20; i++ {
		r.Counter(fmt.Sprintf("kzg.custom.%d", i)).Add(int64(i))
	}

	snap := r.Snapshot()
	if len(snap) != 20 {
		t.Fatalf("snapshot has %d entries, want 20", len(snap))
	}
	if snap["kzg.custom.5"] != int64(5) {
		t.Fatalf("snapshot[kzg.custom.5] = %v, want 5", snap["kzg.custom.5"])
	}
}
