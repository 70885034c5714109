package kzg

import "github.com/chan9mo/kzg10-go/curve"

// Evaluate computes v = p(z) by a Horner-equivalent scan over p's
// reversed-storage coefficients: p[len(p)-i] is the coefficient of
// x^(i-1), accumulated against a running power of z.
func Evaluate(p Polynomial, z curve.Scalar) curve.Scalar {
	var v curve.Scalar
	acc := curve.Scalar{}
	acc.SetOne()

	t := len(p)
	for i := 1; i <= t; i++ {
		var term curve.Scalar
		term.Mul(&p[t-i], &acc)
		v.Add(&v, &term)
		acc.Mul(&acc, &z)
	}
	return v
}
