package kzg

import (
	"github.com/chan9mo/kzg10-go/curve"
	"github.com/chan9mo/kzg10-go/metrics"
)

// Setup runs the trusted-setup ceremony for a degree bound t, sampling the
// toxic-waste scalar α from a CSPRNG and emitting the commitment key
//
//	g1[i] = α^i·G1, g2[i] = α^i·G2   for i = 0..t
//
// α itself is never returned and is overwritten before Setup returns; it
// must not be logged or otherwise retained by a real deployment. t must be
// >= 1, since a KZG commitment key with no linear term cannot open anything.
func Setup(t int) (*CommitKey, error) {
	setupCalls.Inc()
	timer := metrics.NewTimer(setupLatency)
	defer timer.Stop()

	if t < 1 {
		return nil, ErrInvalidDegree
	}

	alpha, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	defer alpha.SetZero()

	g1Gen, g2Gen := curve.Generators()

	key := &CommitKey{
		G1: make([]curve.G1, t+1),
		G2: make([]curve.G2, t+1),
	}

	var acc curve.Scalar
	acc.SetOne()
	for i := 0; i <= t; i++ {
		key.G1[i] = curve.ScalarMulG1(g1Gen, acc)
		key.G2[i] = curve.ScalarMulG2(g2Gen, acc)
		acc.Mul(&acc, &alpha)
	}
	acc.SetZero()

	return key, nil
}
