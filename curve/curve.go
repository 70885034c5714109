// Package curve is the pairing-friendly curve boundary the kzg package is
// written against. It wraps github.com/consensys/gnark-crypto's BN254
// implementation so the rest of this module never touches field or group
// arithmetic directly.
//
// The contract kzg relies on is intentionally small:
//
//   - Scalar is the prime-order scalar field Fr: +, -, *, equality, zero,
//     one, uniform sampling, canonical bytes.
//   - G1 and G2 are the prime-order source groups, each with a fixed
//     generator, addition, negation, scalar multiplication, and canonical
//     affine serialization.
//   - GT is the pairing target group; PairingCheck decides whether a product
//     of pairings equals 1 without materializing GT elements, the only
//     GT operation the verifier needs.
//
// Nothing here is specific to KZG; swapping BN254 for another pairing
// curve means reimplementing this package only.
package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar is an element of Fr, BN254's scalar field.
type Scalar = fr.Element

// G1 is an affine point on BN254's first source group.
type G1 = bn254.G1Affine

// G2 is an affine point on BN254's second source group.
type G2 = bn254.G2Affine

// GT is BN254's pairing target group.
type GT = bn254.GT

// RandomScalar samples a uniformly random element of Fr using a CSPRNG.
func RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := s.SetRandom(); err != nil {
		return s, err
	}
	return s, nil
}

// Generators returns the fixed, non-identity generators of G1 and G2. Any
// fixed choice is sound for KZG setup since the toxic-waste scalar alone
// makes the resulting SRS secret; BN254's canonical generators are used
// here for reproducibility across runs.
func Generators() (G1, G2) {
	_, _, g1, g2 := bn254.Generators()
	return g1, g2
}

// ScalarMulG1 returns s*P.
func ScalarMulG1(p G1, s Scalar) G1 {
	var out G1
	bi := new(big.Int)
	s.BigInt(bi)
	out.ScalarMultiplication(&p, bi)
	return out
}

// ScalarMulG2 returns s*P.
func ScalarMulG2(p G2, s Scalar) G2 {
	var out G2
	bi := new(big.Int)
	s.BigInt(bi)
	out.ScalarMultiplication(&p, bi)
	return out
}

// AddG1 returns P+Q.
func AddG1(p, q G1) G1 {
	var pj bn254.G1Jac
	pj.FromAffine(&p)
	var qj bn254.G1Jac
	qj.FromAffine(&q)
	pj.AddAssign(&qj)
	var out G1
	out.FromJacobian(&pj)
	return out
}

// SubG2 returns P-Q.
func SubG2(p, q G2) G2 {
	var pj bn254.G2Jac
	pj.FromAffine(&p)
	var qj bn254.G2Jac
	qj.FromAffine(&q)
	qj.Neg(&qj)
	pj.AddAssign(&qj)
	var out G2
	out.FromJacobian(&pj)
	return out
}

// ZeroG1 returns the identity element of G1.
func ZeroG1() G1 {
	var z G1
	return z
}

// NegG1 returns -P.
func NegG1(p G1) G1 {
	var out G1
	out.Neg(&p)
	return out
}

// MSMG1 computes Σ scalars[i]*points[i]. len(scalars) must equal
// len(points). Zero terms are permitted; dropping them beforehand does not
// change the result.
func MSMG1(points []G1, scalars []Scalar) (G1, error) {
	var out G1
	if len(points) == 0 {
		return ZeroG1(), nil
	}
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return out, err
	}
	return out, nil
}

// PairingCheck reports whether Π e(P[i], Q[i]) == 1 in GT.
func PairingCheck(p []G1, q []G2) (bool, error) {
	return bn254.PairingCheck(p, q)
}
