package kzg

import "errors"

// Sentinel errors for malformed inputs. Verification rejection is not one
// of these: Verify returns (false, nil) for a proof that does not check
// out, and reserves these errors for caller-fault or implementation-bug
// conditions.
var (
	// ErrInvalidDegree is returned by Setup when t < 1.
	ErrInvalidDegree = errors.New("kzg: degree bound must be >= 1")

	// ErrKeyTooSmall is returned when an operation needs more SRS terms
	// than the CommitKey provides.
	ErrKeyTooSmall = errors.New("kzg: commitment key too small for this operation")

	// ErrDegreeMismatch is returned when a polynomial's length disagrees
	// with the declared degree bound.
	ErrDegreeMismatch = errors.New("kzg: polynomial length does not match declared degree bound")

	// ErrDivisionRemainder indicates the synthetic division inside Witness
	// left a nonzero remainder. Witness computes v = p(z) itself, so this
	// cannot happen for a correct implementation; seeing it means there is
	// a bug in Witness or Evaluate.
	ErrDivisionRemainder = errors.New("kzg: synthetic division left a nonzero remainder")
)
