package rsafdh

import (
	"crypto"
	"crypto/rsa"
	"fmt"
	"math/big"
)

// the attempt counter is a single byte, so expansion gives up after 256
// resamples. For a modulus whose bit length is a multiple of 8 each attempt
// lands below N with probability about 1/2, so only a handful are ever used;
// the cap exists to bound the loop, not because we expect to hit it
const maxHashAttempts = 256

// HashMessage produces a full-domain digest of message under pub: exactly
// k = ceil(bitlen(N)/8) bytes whose value, read as a big-endian integer, is
// less than N. The empty message is valid input.
//
// The digest is deterministic given (hashFn, N, message), so the requester and
// any later verifier recompute the identical digest independently without
// exchanging anything. The returned iv is the retry counter that produced the
// accepted digest; it is diagnostic only and callers are free to ignore it.
//
// Digests are not portable across keys: two moduli of the same bit length
// still bound the retry loop differently.
func HashMessage(hashFn crypto.Hash, pub *rsa.PublicKey, message []byte) ([]byte, byte, error) {
	if !hashFn.Available() {
		return nil, 0, fmt.Errorf("%w: hash function %v is not linked into this binary", ErrHashing, hashFn)
	}

	k := pub.Size()
	for attempt := 0; attempt < maxHashAttempts; attempt++ {
		iv := byte(attempt)
		digest := expandDigest(hashFn, message, iv, k)

		// accept the first expansion that lands inside the modulus
		if new(big.Int).SetBytes(digest).Cmp(pub.N) < 0 {
			return digest, iv, nil
		}
	}

	return nil, 0, fmt.Errorf("%w: no digest below the modulus after %d attempts", ErrHashing, maxHashAttempts)
}

// expandDigest stretches hashFn's output to exactly k bytes: each block hashes
// the message along with the retry counter and a running block counter, and
// blocks are concatenated until k bytes are available
func expandDigest(hashFn crypto.Hash, message []byte, iv byte, k int) []byte {
	digest := make([]byte, 0, k)
	for block := 0; len(digest) < k; block++ {
		hasher := hashFn.New()
		hasher.Write(message)
		hasher.Write([]byte{iv, byte(block)})
		digest = hasher.Sum(digest)
	}
	return digest[:k]
}
