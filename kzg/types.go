// Package kzg implements the four KZG10 (Kate-Zaverucha-Goldberg) algorithms
// -- trusted setup, commitment, evaluation-witness generation, and
// pairing-based verification -- over BN254, plus the Fiat-Shamir challenge
// derivation used to make a three-polynomial opening non-interactive.
//
// Polynomials use reversed-storage coefficients: Polynomial[i] holds the
// coefficient of x^(deg-1-i), so the highest-degree term is at index 0 and
// the constant term is at the last index. This convention is fixed at the
// type level precisely so Commit, Evaluate, and Witness cannot disagree
// about which slot holds which power of x; NewPolynomial keeps the order it
// is given, so callers pass coefficients highest-degree first.
package kzg

import "github.com/chan9mo/kzg10-go/curve"

// Polynomial is a degree-bound-t polynomial stored highest-degree-first:
// Polynomial[i] is the coefficient of x^(len(Polynomial)-1-i).
type Polynomial []curve.Scalar

// NewPolynomial builds a Polynomial from coefficients given highest-degree
// first, i.e. in the same order the reversed-storage convention expects.
// It copies coeffs so the returned Polynomial does not alias the caller's
// slice.
func NewPolynomial(coeffs []curve.Scalar) Polynomial {
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	return p
}

// Clone returns an independent copy of p. Witness mutates its input;
// callers that need p preserved across a Witness call should pass
// p.Clone() instead of p.
func (p Polynomial) Clone() Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// CommitKey is the structured reference string (SRS) produced by Setup:
// g1[i] = α^i·G1, g2[i] = α^i·G2 for i = 0..t. It is read-only after Setup
// returns and may be shared across any number of concurrent Commit,
// Evaluate, Witness, and Verify calls.
type CommitKey struct {
	G1 []curve.G1
	G2 []curve.G2
}

// Degree returns the maximum polynomial degree bound this key supports.
func (k *CommitKey) Degree() int {
	if len(k.G1) == 0 {
		return 0
	}
	return len(k.G1) - 1
}

// Commitment is a single G1 element binding a polynomial to its coefficients
// under the q-SDH assumption.
type Commitment = curve.G1

// Witness is a KZG opening: proof that the committed polynomial evaluates
// to V/G1 = p(z) at z, carried as the group element V = p(z)·G1 rather than
// the bare scalar so Verify never needs to re-derive it.
type Witness struct {
	Z curve.Scalar
	V curve.G1
	W curve.G1
}
