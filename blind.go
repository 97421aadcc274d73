package rsafdh

import (
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"
)

// Blind hides a full-domain digest so it can be sent to the signer without
// revealing which message is being signed. It returns the blinded digest and
// the unblinder, both encoded to exactly pub.Size() bytes.
//
// The unblinder is the requester's secret. It must be used for exactly one
// unblind and then discarded; reusing a blinding factor across requests lets
// an observer link them and undermines unforgeability.
func Blind(random io.Reader, pub *rsa.PublicKey, digest []byte) (blinded []byte, unblinder []byte, err error) {
	k := pub.Size()
	if len(digest) != k {
		return nil, nil, fmt.Errorf("%w: digest is %d bytes, key expects %d", ErrInput, len(digest), k)
	}

	m := new(big.Int).SetBytes(digest)
	if m.Cmp(pub.N) >= 0 {
		return nil, nil, fmt.Errorf("%w: digest value exceeds the modulus", ErrInput)
	}

	r, _, err := blindingFactor(random, pub)
	if err != nil {
		return nil, nil, err
	}

	// b <- digest * r^e (mod N)
	b := encrypt(pub, r)
	b.Mul(b, m)
	b.Mod(b, pub.N)

	blinded = make([]byte, k)
	unblinder = make([]byte, k)
	return b.FillBytes(blinded), r.FillBytes(unblinder), nil
}

// SignBlinded signs a blinded digest. The signer never sees the message or
// its digest, only the opaque blinded value; the result only becomes a usable
// signature once the requester runs Unblind on it.
//
// The key used here must be reserved for blind signing. See the SigningKey
// documentation for why reuse with any other RSA scheme is dangerous.
func SignBlinded(random io.Reader, key *SigningKey, blindedDigest []byte) ([]byte, error) {
	return signHashed(random, key, blindedDigest)
}

// Unblind strips the blinding factor from a blind signature, producing a
// signature over the original digest that verifies like any plain one.
//
// No correctness check happens here; a dishonest signer's output surfaces as
// ErrVerification when the result is verified.
func Unblind(pub *rsa.PublicKey, blindSig []byte, unblinder []byte) ([]byte, error) {
	r := new(big.Int).SetBytes(unblinder)
	rInv := new(big.Int).ModInverse(r, pub.N)
	if rInv == nil {
		return nil, fmt.Errorf("%w: unblinder is not invertible mod N", ErrInput)
	}

	// sig <- blindSig * r^-1 (mod N)
	s := new(big.Int).SetBytes(blindSig)
	s.Mul(s, rInv)
	s.Mod(s, pub.N)

	sig := make([]byte, pub.Size())
	return s.FillBytes(sig), nil
}
