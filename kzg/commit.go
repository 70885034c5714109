package kzg

import (
	"github.com/chan9mo/kzg10-go/curve"
	"github.com/chan9mo/kzg10-go/metrics"
)

// Commit computes C = p(α)·G1 = Σ p[t-i]·g1[i-1] for i = 1..t, i.e. the
// coefficient of x^(i-1) multiplied against the correspondingly-powered G1
// element of the SRS. p must have exactly key.Degree() coefficients.
func Commit(key *CommitKey, p Polynomial) (Commitment, error) {
	commitCalls.Inc()
	timer := metrics.NewTimer(commitLatency)
	defer timer.Stop()

	t := len(p)
	if len(key.G1) < t {
		return curve.ZeroG1(), ErrKeyTooSmall
	}
	if t != key.Degree() {
		return curve.ZeroG1(), ErrDegreeMismatch
	}

	points := make([]curve.G1, 0, t)
	scalars := make([]curve.Scalar, 0, t)
	for i := 1; i <= t; i++ {
		c := p[t-i]
		if c.IsZero() {
			continue
		}
		points = append(points, key.G1[i-1])
		scalars = append(scalars, c)
	}

	return curve.MSMG1(points, scalars)
}
