package kzg

import "github.com/chan9mo/kzg10-go/metrics"

// Call counts and latency histograms for Setup, Commit, Witness, and Verify,
// registered under the process-wide default registry so a PrometheusExporter
// set up by the embedding binary picks them up with no further wiring.
var (
	setupCalls   = metrics.DefaultRegistry.Counter("kzg.setup.calls")
	setupLatency = metrics.DefaultRegistry.Histogram("kzg.setup.latency_ms")

	commitCalls   = metrics.DefaultRegistry.Counter("kzg.commit.calls")
	commitLatency = metrics.DefaultRegistry.Histogram("kzg.commit.latency_ms")

	witnessCalls   = metrics.DefaultRegistry.Counter("kzg.witness.calls")
	witnessLatency = metrics.DefaultRegistry.Histogram("kzg.witness.latency_ms")

	verifyCalls    = metrics.DefaultRegistry.Counter("kzg.verify.calls")
	verifyAccepted = metrics.DefaultRegistry.Counter("kzg.verify.accepted")
	verifyLatency  = metrics.DefaultRegistry.Histogram("kzg.verify.latency_ms")
)
