package rsafdh

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// run the requester/signer/requester round for one message, returning
// everything the protocol produced along the way
func runBlindRound(key *SigningKey, message []byte) (digest, blinded, unblinder, blindSig, sig []byte) {
	pub := key.Public()

	digest, _, err := HashMessage(crypto.SHA256, pub, message)
	Expect(err).To(BeNil(), fmt.Sprintf("failed to hash: %s", err))

	blinded, unblinder, err = Blind(rand.Reader, pub, digest)
	Expect(err).To(BeNil(), fmt.Sprintf("failed to blind: %s", err))

	blindSig, err = SignBlinded(rand.Reader, key, blinded)
	Expect(err).To(BeNil(), fmt.Sprintf("failed to blind-sign: %s", err))

	sig, err = Unblind(pub, blindSig, unblinder)
	Expect(err).To(BeNil(), fmt.Sprintf("failed to unblind: %s", err))

	return
}

var _ = Describe("Blind signatures", func() {

	message := []byte(testMessage)

	Context("The full protocol", func() {
		// note: INSECURE 256-bit key for quick testing
		priv, _ := rsa.GenerateKey(rand.Reader, 256)
		key := NewSigningKey(priv)
		pub := key.Public()

		It("Round-trips across many digest samples", func() {
			// repeat so that we get a good sampling of digests and blinding factors
			for i := 0; i < 500; i++ {
				digest, _, _, blindSig, sig := runBlindRound(key, message)

				// a blind signature is useless until it has been unblinded
				Expect(VerifyHashed(pub, digest, blindSig)).To(MatchError(ErrVerification), "blind signature must not verify against the pre-blind digest")

				// rehash independently, the way a verifier with only the message would
				checkDigest, _, err := HashMessage(crypto.SHA256, pub, message)
				Expect(err).To(BeNil())
				Expect(VerifyHashed(pub, checkDigest, sig)).To(Succeed())
				Expect(Verify(pub, crypto.SHA256, message, sig)).To(Succeed())
			}
		})

		It("Produces a fresh blinding every time", func() {
			digest, _, err := HashMessage(crypto.SHA256, pub, message)
			Expect(err).To(BeNil())

			blinded1, unblinder1, err := Blind(rand.Reader, pub, digest)
			Expect(err).To(BeNil())
			blinded2, unblinder2, err := Blind(rand.Reader, pub, digest)
			Expect(err).To(BeNil())

			Expect(blinded1).NotTo(Equal(blinded2), "two blindings of one digest must not repeat")
			Expect(unblinder1).NotTo(Equal(unblinder2))
		})

		It("Satisfies the unblinding algebra", func() {
			_, _, unblinder, blindSig, sig := runBlindRound(key, message)

			// blindSig ≡ sig * r (mod N)
			sigTimesR := new(big.Int).Mul(new(big.Int).SetBytes(sig), new(big.Int).SetBytes(unblinder))
			Expect(congruentModN(sigTimesR, new(big.Int).SetBytes(blindSig), pub.N)).To(BeTrue())
		})

		It("Rejects a non-invertible unblinder", func() {
			_, _, _, blindSig, _ := runBlindRound(key, message)

			_, err := Unblind(pub, blindSig, []byte{0})
			Expect(err).To(MatchError(ErrInput))
		})

		It("Rejects an undersized blinded digest", func() {
			_, err := SignBlinded(rand.Reader, key, []byte("too short"))
			Expect(err).To(MatchError(ErrInput))
		})
	})

	Context("Keys of different sizes", func() {
		priv1, _ := rsa.GenerateKey(rand.Reader, 256)
		priv2, _ := rsa.GenerateKey(rand.Reader, 512)
		key1 := NewSigningKey(priv1)
		key2 := NewSigningKey(priv2)

		It("Produces entirely distinct protocol transcripts", func() {
			digest1, blinded1, unblinder1, blindSig1, sig1 := runBlindRound(key1, message)
			digest2, blinded2, unblinder2, blindSig2, sig2 := runBlindRound(key2, message)

			Expect(digest1).NotTo(Equal(digest2))
			Expect(blinded1).NotTo(Equal(blinded2))
			Expect(unblinder1).NotTo(Equal(unblinder2))
			Expect(blindSig1).NotTo(Equal(blindSig2))
			Expect(sig1).NotTo(Equal(sig2))
		})

		It("Never cross-validates", func() {
			_, _, _, _, sig1 := runBlindRound(key1, message)
			_, _, _, _, sig2 := runBlindRound(key2, message)

			Expect(Verify(key1.Public(), crypto.SHA256, message, sig2)).NotTo(Succeed())
			Expect(Verify(key2.Public(), crypto.SHA256, message, sig1)).NotTo(Succeed())
		})

		It("Refuses to sign a blinded digest from a foreign modulus", func() {
			_, blinded2, _, _, _ := runBlindRound(key2, message)

			// a 512-bit blinded digest cannot be signed under the 256-bit key
			_, err := SignBlinded(rand.Reader, key1, blinded2)
			Expect(err).To(MatchError(ErrInput))
		})
	})
})
