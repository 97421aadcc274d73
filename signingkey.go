package rsafdh

import (
	"bytes"
	"crypto/rsa"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"
)

const pemType = "RSA FDH SIGNING KEY"

// A SigningKey is an RSA private key reserved for FDH signing. The wrapper is
// deliberate: a key that blind-signs must never be handed to any other RSA
// scheme, because a blind signature on an adversarially chosen value is
// indistinguishable from a raw decryption of it. Keeping the key behind an
// opaque type makes that reuse a compile error instead of a policy.
type SigningKey struct {
	priv *rsa.PrivateKey
}

// NewSigningKey wraps priv for use with this package. The key is borrowed,
// not copied; the caller must not use it with any other RSA API afterwards
func NewSigningKey(priv *rsa.PrivateKey) *SigningKey {
	return &SigningKey{priv: priv}
}

// Public returns the public part of the key, which is safe to share with
// requesters and verifiers
func (sk *SigningKey) Public() *rsa.PublicKey {
	return &sk.priv.PublicKey
}

// Size returns the modulus length in bytes, which is also the length of every
// digest and signature produced under this key
func (sk *SigningKey) Size() int {
	return sk.priv.Size()
}

// used exclusively as a placeholder for encoding-decoding
type signingKey struct {
	N      []byte
	E      int
	D      []byte
	Primes [][]byte
}

// EncodePEM returns a PEM encoding of the key under a dedicated block type,
// so that a stored key still advertises that it is only for FDH signing
func (sk *SigningKey) EncodePEM() (string, error) {
	// we perform this conversion because asn1.Marshal cannot handle pointer values or unexported fields
	primes := make([][]byte, len(sk.priv.Primes))
	for i, p := range sk.priv.Primes {
		primes[i] = p.Bytes()
	}

	b, err := asn1.Marshal(signingKey{
		N:      sk.priv.N.Bytes(),
		E:      sk.priv.E,
		D:      sk.priv.D.Bytes(),
		Primes: primes,
	})
	if err != nil {
		return "", fmt.Errorf("failed to DER-encode: %s", err)
	}

	keyPEM := new(bytes.Buffer)
	err = pem.Encode(keyPEM, &pem.Block{
		Type:  pemType,
		Bytes: b,
	})
	if err != nil {
		return "", fmt.Errorf("failed to PEM-encode: %s", err)
	}

	return keyPEM.String(), nil
}

// DecodePEM reverses EncodePEM
func DecodePEM(encoded string) (*SigningKey, error) {
	block, _ := pem.Decode([]byte(encoded))
	if block == nil || block.Type != pemType {
		return nil, fmt.Errorf("failed to decode PEM block containing an FDH signing key")
	}

	var skToUnmarshal signingKey
	rest, err := asn1.Unmarshal(block.Bytes, &skToUnmarshal)
	if err != nil || len(rest) > 0 {
		return nil, fmt.Errorf("failed to unmarshal DER-encoded signing key")
	}

	priv := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).SetBytes(skToUnmarshal.N),
			E: skToUnmarshal.E,
		},
		D: new(big.Int).SetBytes(skToUnmarshal.D),
	}
	for _, p := range skToUnmarshal.Primes {
		priv.Primes = append(priv.Primes, new(big.Int).SetBytes(p))
	}

	return &SigningKey{priv: priv}, nil
}
