package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/chan9mo/kzg10-go/curve"
)

// fiatShamirDomain tags the transcript so a challenge derived here can never
// collide with a challenge computed for an unrelated protocol that happens
// to hash the same three commitments.
const fiatShamirDomain = "KZG-FS-v1"

// FiatShamirPoint derives the non-interactive evaluation challenge z for a
// simultaneous opening of three commitments C_A, C_B, C_C, as used when
// checking C(x) = A(x)*B(x) at a single random point.
//
// It hashes the domain tag, the degree bound, and the three commitments'
// canonical affine (compressed) serializations with SHA-256, then reduces
// the 256-bit digest modulo Fr. Serializations must be canonical here:
// hashing a non-canonical representation (a projective coordinate, say)
// would let two encodings of the same point yield different challenges.
func FiatShamirPoint(t int, cA, cB, cC Commitment) curve.Scalar {
	h := sha256.New()
	h.Write([]byte(fiatShamirDomain))

	var tBuf [8]byte
	binary.BigEndian.PutUint64(tBuf[:], uint64(t))
	h.Write(tBuf[:])

	for _, c := range []Commitment{cA, cB, cC} {
		b := c.Bytes()
		h.Write(b[:])
	}

	return hashToFr(h.Sum(nil))
}

// hashToFr reduces a 256-bit digest modulo Fr's order. This is the simple
// "hash then reduce" construction, not a full RFC-9380 expand_message
// pipeline, which is more machinery than a single 256-bit digest over a
// ~254-bit field needs.
func hashToFr(digest []byte) curve.Scalar {
	var out curve.Scalar
	out.SetBigInt(new(big.Int).SetBytes(digest))
	return out
}
