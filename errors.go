package rsafdh

import "errors"

var (
	// ErrInput reports a digest or signature whose byte length or integer
	// value is inconsistent with the modulus of the key in use
	ErrInput = errors.New("rsafdh: input does not fit the key modulus")

	// ErrHashing reports that full-domain hashing exhausted its retry budget
	// without producing a digest below the modulus
	ErrHashing = errors.New("rsafdh: failed to produce a full-domain digest")

	// ErrVerification reports that a signature did not verify. It is kept
	// deliberately uniform: wrong key, wrong digest, corrupted signature and
	// out-of-range signature all produce this same error, so a forger gets no
	// hint about which check came closest to passing
	ErrVerification = errors.New("rsafdh: verification error")
)
