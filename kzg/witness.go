package kzg

import (
	"github.com/chan9mo/kzg10-go/curve"
	"github.com/chan9mo/kzg10-go/metrics"
)

// Witness computes a KZG opening of p at z: it evaluates v = p(z), forms
// p'(x) = p(x) - v, divides p' by (x - z) via synthetic division (exact,
// since z is a root of p' by construction), and commits to the resulting
// quotient q against the matching prefix of key.G1.
//
// Witness mutates p in place: it subtracts v from p's constant term and
// overwrites the leading t-1 slots with q's coefficients during the
// division. Callers that still need p afterwards must pass p.Clone().
func Witness(key *CommitKey, p Polynomial, z curve.Scalar) (*Witness, error) {
	witnessCalls.Inc()
	timer := metrics.NewTimer(witnessLatency)
	defer timer.Stop()

	t := len(p)
	if len(key.G1) < 1 || len(key.G1) < t {
		return nil, ErrKeyTooSmall
	}
	if t < 1 || t != key.Degree() {
		return nil, ErrDegreeMismatch
	}

	v := Evaluate(p, z)

	// p'(x) = p(x) - v: subtract from the constant term, at index t-1
	// under reversed storage.
	p[t-1].Sub(&p[t-1], &v)

	remainder := syntheticDivide(p, z, t)
	if !remainder.IsZero() {
		return nil, ErrDivisionRemainder
	}

	q := p[:t-1]
	points := make([]curve.G1, 0, len(q))
	scalars := make([]curve.Scalar, 0, len(q))
	for i := 1; i <= len(q); i++ {
		c := q[len(q)-i]
		if c.IsZero() {
			continue
		}
		points = append(points, key.G1[i-1])
		scalars = append(scalars, c)
	}
	w, err := curve.MSMG1(points, scalars)
	if err != nil {
		return nil, err
	}

	vG1 := curve.ScalarMulG1(key.G1[0], v)

	return &Witness{Z: z, V: vG1, W: w}, nil
}

// syntheticDivide divides the length-t reversed-storage buffer p (already
// having had v subtracted from its constant term) by (x - z), high to low.
// On return p[0:t-1] holds the length-(t-1) quotient in reversed storage
// and the remainder is returned separately rather than stored, since the
// caller only needs p[0:t-1].
//
// For t == 1 there is no quotient; the lone coefficient is itself the
// remainder.
func syntheticDivide(p Polynomial, z curve.Scalar, t int) curve.Scalar {
	if t == 1 {
		return p[0]
	}

	carry := p[0]
	for k := 1; k < t-1; k++ {
		next := p[k]
		var term curve.Scalar
		term.Mul(&carry, &z)
		next.Add(&next, &term)
		p[k-1] = carry
		carry = next
	}
	p[t-2] = carry

	var remainder curve.Scalar
	remainder.Mul(&carry, &z)
	remainder.Add(&remainder, &p[t-1])
	return remainder
}
