// PLEASE NOTE: this is not a homegrown cryptographic implementation. The raw
// modular exponentiation and the multiplicative blinding countermeasure below
// follow the Go stdlib crypto/rsa. We would have preferred to use those methods
// directly, but crypto/rsa does not expose the unpadded operations that FDH and
// blind signing are built on.

package rsafdh

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// encrypt performs the raw public-key operation, x^e mod N
func encrypt(pub *rsa.PublicKey, x *big.Int) *big.Int {
	e := big.NewInt(int64(pub.E))
	return new(big.Int).Exp(x, e, pub.N)
}

// decrypt performs the raw private-key operation, x^d mod N
//
// If random is not nil, the exponentiation is blinded with a fresh random
// factor so that the timing of x^d cannot be measured directly
func decrypt(random io.Reader, priv *rsa.PrivateKey, x *big.Int) (*big.Int, error) {
	if priv.N.Sign() == 0 {
		return nil, fmt.Errorf("%w: key has a zero modulus", ErrInput)
	}
	if x.Cmp(priv.N) >= 0 {
		return nil, fmt.Errorf("%w: value exceeds the modulus", ErrInput)
	}

	c := x
	var rInv *big.Int
	if random != nil {
		var r *big.Int
		var err error
		r, rInv, err = blindingFactor(random, &priv.PublicKey)
		if err != nil {
			return nil, err
		}

		// c <- x * r^e (mod N), so that c^d ≡ x^d * r (mod N)
		c = encrypt(&priv.PublicKey, r)
		c.Mul(c, x)
		c.Mod(c, priv.N)
	}

	m := new(big.Int).Exp(c, priv.D, priv.N)

	if rInv != nil {
		m.Mul(m, rInv)
		m.Mod(m, priv.N)
	}

	return m, nil
}

// blindingFactor returns a random element of the multiplicative group mod N
// together with its inverse. Both the blind-signing protocol and decrypt's
// countermeasure draw their factors here.
//
// A draw that is not coprime to N has no inverse and is rejected rather than
// silently used. For a properly generated key such a draw would amount to
// stumbling on a factor of N, so the loop all but never repeats
func blindingFactor(random io.Reader, pub *rsa.PublicKey) (r *big.Int, rInv *big.Int, err error) {
	for {
		r, err = rand.Int(random, pub.N)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to draw a blinding factor: %w", err)
		}

		// 0 is not invertible and 1 would not blind anything
		if r.Cmp(bigZero) == 0 || r.Cmp(bigOne) == 0 {
			continue
		}

		// ModInverse returns nil when r shares a factor with N
		rInv = new(big.Int).ModInverse(r, pub.N)
		if rInv == nil {
			continue
		}

		return r, rInv, nil
	}
}
