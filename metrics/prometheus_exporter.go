package metrics

import (
	"fmt"
	"math"
	"net/http"
	"runtime"
	"sort"
	"strings"
	"time"
)

// PrometheusExporter serves a Registry's metrics in Prometheus text
// exposition format. It implements http.Handler directly; mount it wherever
// the embedding binary serves HTTP, typically at /metrics.
//
// Counters are exported as counters. Histograms are exported as summaries
// with _count and _sum series plus _min, _max, and _mean gauge series,
// which is what the hand-rolled Histogram can offer without quantile
// sketches.
type PrometheusExporter struct {
	registry *Registry

	// Namespace is prepended (with an underscore) to every exported metric
	// name. Dots and dashes in registry names become underscores.
	Namespace string

	// Runtime controls whether Go runtime series (goroutines, heap, GC) are
	// appended to each scrape.
	Runtime bool
}

// NewPrometheusExporter creates an exporter over the given registry with
// the "kzg10" namespace and runtime metrics enabled.
func NewPrometheusExporter(registry *Registry) *PrometheusExporter {
	return &PrometheusExporter{
		registry:  registry,
		Namespace: "kzg10",
		Runtime:   true,
	}
}

// ServeHTTP renders the current state of the registry.
func (pe *PrometheusExporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	var b strings.Builder
	pe.writeCounters(&b)
	pe.writeHistograms(&b)
	if pe.Runtime {
		pe.writeRuntime(&b)
	}
	w.Write([]byte(b.String()))
}

func (pe *PrometheusExporter) writeCounters(b *strings.Builder) {
	pe.registry.mu.RLock()
	defer pe.registry.mu.RUnlock()

	for _, name := range sortedKeys(pe.registry.counters) {
		c := pe.registry.counters[name]
		pn := pe.promName(name)
		fmt.Fprintf(b, "# HELP %s %s\n# TYPE %s counter\n", pn, name, pn)
		fmt.Fprintf(b, "%s %d\n", pn, c.Value())
	}
}

func (pe *PrometheusExporter) writeHistograms(b *strings.Builder) {
	pe.registry.mu.RLock()
	defer pe.registry.mu.RUnlock()

	for _, name := range sortedKeys(pe.registry.histograms) {
		h := pe.registry.histograms[name]
		pn := pe.promName(name)
		fmt.Fprintf(b, "# HELP %s %s\n# TYPE %s summary\n", pn, name, pn)
		fmt.Fprintf(b, "%s_count %d\n", pn, h.Count())
		fmt.Fprintf(b, "%s_sum %s\n", pn, formatFloat(h.Sum()))
		if h.Count() > 0 {
			fmt.Fprintf(b, "%s_min %s\n", pn, formatFloat(h.Min()))
			fmt.Fprintf(b, "%s_max %s\n", pn, formatFloat(h.Max()))
			fmt.Fprintf(b, "%s_mean %s\n", pn, formatFloat(h.Mean()))
		}
	}
}

// writeRuntime appends the Go runtime series a scraper of a prover or
// ceremony process cares about: goroutine count, heap in use, and GC totals.
func (pe *PrometheusExporter) writeRuntime(b *strings.Builder) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	gauge := func(name, help string, value float64) {
		pn := pe.promName(name)
		fmt.Fprintf(b, "# HELP %s %s\n# TYPE %s gauge\n", pn, help, pn)
		fmt.Fprintf(b, "%s %s\n", pn, formatFloat(value))
	}

	gauge("go.goroutines", "Number of active goroutines", float64(runtime.NumGoroutine()))
	gauge("go.memstats.heap_alloc_bytes", "Bytes of allocated heap objects", float64(m.HeapAlloc))
	gauge("go.memstats.heap_inuse_bytes", "Bytes in in-use heap spans", float64(m.HeapInuse))
	gauge("go.memstats.sys_bytes", "Bytes of memory obtained from the OS", float64(m.Sys))
	gauge("go.gc.cycles_total", "Total number of completed GC cycles", float64(m.NumGC))
	gauge("go.gc.pause_total_seconds", "Total GC pause time in seconds", float64(m.PauseTotalNs)/1e9)
	gauge("process.start_time_seconds", "Process start time in seconds since epoch", float64(processStartTime.Unix()))
}

// promName converts a dot-separated registry name to Prometheus format and
// applies the namespace prefix.
func (pe *PrometheusExporter) promName(name string) string {
	s := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if pe.Namespace != "" {
		return pe.Namespace + "_" + s
	}
	return s
}

// formatFloat formats a float64 for Prometheus output, handling special values.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var processStartTime = time.Now()
