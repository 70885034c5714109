// Command kzgdemo is a usage sketch, not part of the kzg core: it picks two
// random polynomials A(x), B(x), forms C(x) = A(x)*B(x), commits to all
// three, derives a single Fiat-Shamir challenge over the three commitments,
// opens each polynomial at that challenge, and verifies all three openings.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/chan9mo/kzg10-go/curve"
	"github.com/chan9mo/kzg10-go/kzg"
	"github.com/chan9mo/kzg10-go/log"
	"github.com/chan9mo/kzg10-go/metrics"
)

func main() {
	degree := flag.Int("degree", 16, "degree bound for A and B; C = A*B has degree bound 2*degree-1")
	verbosity := flag.Int("v", 1, "log verbosity: 0=warn, 1=info, 2=debug, 3+=trace")
	metricsAddr := flag.String("metrics.addr", "", "serve Prometheus metrics on this address (e.g. :9090) and stay up after the demo completes")
	flag.Parse()

	log.SetDefault(log.New(log.LevelFromVerbosity(*verbosity)))
	logger := log.Default().Module("kzgdemo")

	if err := run(*degree, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.NewPrometheusExporter(metrics.DefaultRegistry))
		logger.Info("serving metrics", "addr", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			logger.Error("metrics server failed", "error", err)
			os.Exit(1)
		}
	}
}

func run(degree int, logger *log.Logger) error {
	a, err := randomPolynomial(degree)
	if err != nil {
		return fmt.Errorf("sample A: %w", err)
	}
	b, err := randomPolynomial(degree)
	if err != nil {
		return fmt.Errorf("sample B: %w", err)
	}
	c := multiply(a, b)

	key, err := kzg.Setup(2*degree - 1)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	logger.Info("ran trusted setup", "degreeBound", key.Degree())

	keyA := &kzg.CommitKey{G1: key.G1[:degree+1], G2: key.G2[:degree+1]}
	keyB := &kzg.CommitKey{G1: key.G1[:degree+1], G2: key.G2[:degree+1]}
	keyC := key

	commitA, err := kzg.Commit(keyA, a)
	if err != nil {
		return fmt.Errorf("commit A: %w", err)
	}
	commitB, err := kzg.Commit(keyB, b)
	if err != nil {
		return fmt.Errorf("commit B: %w", err)
	}
	commitC, err := kzg.Commit(keyC, c.Clone())
	if err != nil {
		return fmt.Errorf("commit C: %w", err)
	}
	logger.Info("committed A, B, C")

	z := kzg.FiatShamirPoint(keyC.Degree(), commitA, commitB, commitC)
	logger.Trace("derived Fiat-Shamir challenge", "z", z.String())
	logger.Info("derived Fiat-Shamir challenge")

	witnessA, err := kzg.Witness(keyA, a.Clone(), z)
	if err != nil {
		return fmt.Errorf("open A: %w", err)
	}
	witnessB, err := kzg.Witness(keyB, b.Clone(), z)
	if err != nil {
		return fmt.Errorf("open B: %w", err)
	}
	witnessC, err := kzg.Witness(keyC, c, z)
	if err != nil {
		return fmt.Errorf("open C: %w", err)
	}
	logger.Info("opened A, B, C at the challenge")

	for name, pair := range map[string]struct {
		key *kzg.CommitKey
		c   kzg.Commitment
		w   *kzg.Witness
	}{
		"A": {keyA, commitA, witnessA},
		"B": {keyB, commitB, witnessB},
		"C": {keyC, commitC, witnessC},
	} {
		ok, err := kzg.Verify(pair.key, pair.c, pair.w)
		if err != nil {
			return fmt.Errorf("verify %s: %w", name, err)
		}
		if !ok {
			return fmt.Errorf("verify %s: rejected", name)
		}
		logger.Info("verified opening", "polynomial", name)
	}

	fmt.Println("all three openings verified")
	return nil
}

func randomPolynomial(degree int) (kzg.Polynomial, error) {
	coeffs := make([]curve.Scalar, degree)
	for i := range coeffs {
		s, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}
	return kzg.NewPolynomial(coeffs), nil
}

// multiply returns the product polynomial C = A*B in the same
// reversed-storage convention as its inputs.
func multiply(a, b kzg.Polynomial) kzg.Polynomial {
	out := make(kzg.Polynomial, len(a)+len(b)-1)
	for i, ai := range a {
		for j, bj := range b {
			var term curve.Scalar
			term.Mul(&ai, &bj)
			// a[i] is the coefficient of x^(len(a)-1-i); b[j] likewise.
			// Their product contributes to x^(len(out)-1 - (i+j)).
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return out
}
