package rsafdh

import (
	"crypto"
	"crypto/rsa"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

// Sign produces an FDH signature over message. The message is expanded to a
// full-domain digest under the key's modulus and the digest is signed raw; no
// PKCS padding is involved. The signature is always exactly key.Size() bytes.
//
// random feeds the signer's internal timing countermeasure; the signature
// itself is deterministic for a given key and message.
func Sign(random io.Reader, key *SigningKey, hashFn crypto.Hash, message []byte) ([]byte, error) {
	hashed, _, err := HashMessage(hashFn, key.Public(), message)
	if err != nil {
		return nil, err
	}

	return signHashed(random, key, hashed)
}

// Verify checks an FDH signature over message. It recomputes the full-domain
// digest and compares it against sig^e mod N. Signatures produced by Sign and
// unblinded signatures from the blind protocol both verify here.
func Verify(pub *rsa.PublicKey, hashFn crypto.Hash, message []byte, sig []byte) error {
	hashed, _, err := HashMessage(hashFn, pub, message)
	if err != nil {
		return err
	}

	return VerifyHashed(pub, hashed, sig)
}

// VerifyHashed checks sig against an already-expanded digest.
//
// Every way a signature can fail -- wrong key, wrong digest, corruption, a
// blind signature that was never unblinded -- yields the same ErrVerification,
// so callers cannot be turned into an oracle for near-misses
func VerifyHashed(pub *rsa.PublicKey, hashed []byte, sig []byte) error {
	k := pub.Size()
	if len(hashed) != k {
		return fmt.Errorf("%w: digest is %d bytes, key expects %d", ErrInput, len(hashed), k)
	}

	c := new(big.Int).SetBytes(sig)
	if c.Cmp(pub.N) >= 0 {
		return ErrVerification
	}

	recovered := make([]byte, k)
	encrypt(pub, c).FillBytes(recovered)

	if subtle.ConstantTimeCompare(recovered, hashed) != 1 {
		return ErrVerification
	}

	return nil
}

// signHashed applies the raw private-key operation to a digest-sized value,
// either a full-domain digest or a blinded one. It makes no attempt to judge
// whether the value was honestly derived from a message; that is the point of
// blind signing
func signHashed(random io.Reader, key *SigningKey, hashed []byte) ([]byte, error) {
	k := key.priv.Size()
	if len(hashed) != k {
		return nil, fmt.Errorf("%w: digest is %d bytes, key expects %d", ErrInput, len(hashed), k)
	}

	m := new(big.Int).SetBytes(hashed)
	c, err := decrypt(random, key.priv, m)
	if err != nil {
		return nil, err
	}

	sig := make([]byte, k)
	return c.FillBytes(sig), nil
}
