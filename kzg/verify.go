package kzg

import (
	"github.com/chan9mo/kzg10-go/curve"
	"github.com/chan9mo/kzg10-go/metrics"
)

// Verify checks a KZG opening: it accepts iff
//
//	e(C, G2) == e(W, (α-z)·G2) · e(V, G2)
//
// which is rearranged as the single pairing-check
//
//	e(C, G2) · e(-W, (α-z)·G2) · e(-V, G2) == 1
//
// so it only needs key.G2[0] (= G2) and key.G2[1] (= α·G2); (α-z)·G2 is
// computed on the fly as key.G2[1] + (-z)·key.G2[0]. A false return is a
// normal "proof rejected" outcome, not an error -- only malformed inputs
// (a key with too few G2 terms) produce an error.
func Verify(key *CommitKey, c Commitment, w *Witness) (bool, error) {
	verifyCalls.Inc()
	timer := metrics.NewTimer(verifyLatency)
	defer timer.Stop()

	if len(key.G2) < 2 {
		return false, ErrKeyTooSmall
	}

	zG2 := curve.ScalarMulG2(key.G2[0], w.Z)
	alphaMinusZ := curve.SubG2(key.G2[1], zG2)

	negW := curve.NegG1(w.W)
	negV := curve.NegG1(w.V)

	ok, err := curve.PairingCheck(
		[]curve.G1{c, negW, negV},
		[]curve.G2{key.G2[0], alphaMinusZ, key.G2[0]},
	)
	if err == nil && ok {
		verifyAccepted.Inc()
	}
	return ok, err
}
