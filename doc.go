/*
Package rsafdh implements RSA signatures over a full domain hash (FDH), in two flavors:
a regular signature scheme, and a blind variant in which the signer never learns the
message being signed.

# Full domain hashing

Instead of PKCS-style padding, a message is expanded to a digest spanning (nearly) the
whole domain of the modulus. [HashMessage] stretches the chosen hash over the modulus
width and resamples with a retry counter until the digest's integer value falls below N.
Expansion is deterministic for a given key, hash and message, so every party recomputes
the same digest independently.

# Regular signatures

	key, _ := rsa.GenerateKey(rand.Reader, 2048)
	signer := rsafdh.NewSigningKey(key)

	sig, err := rsafdh.Sign(rand.Reader, signer, crypto.SHA256, message)
	err = rsafdh.Verify(signer.Public(), crypto.SHA256, message, sig)

# Blind signatures

The requester expands and blinds the message, keeping the unblinder secret:

	digest, _, err := rsafdh.HashMessage(crypto.SHA256, pub, message)
	blinded, unblinder, err := rsafdh.Blind(rand.Reader, pub, digest)

The signer signs the blinded digest without seeing the message or its digest:

	blindSig, err := rsafdh.SignBlinded(rand.Reader, signer, blinded)

The requester strips the blinding, leaving an ordinary signature over the digest.
Until this step the blind signature verifies against nothing:

	sig, err := rsafdh.Unblind(pub, blindSig, unblinder)
	err = rsafdh.Verify(pub, crypto.SHA256, message, sig)

# Security notes

A key used with this package must not be used with any other RSA scheme. Blind-signing
an attacker-chosen value is equivalent to raw RSA decryption of it, so a shared key
turns the signer into a decryption oracle. See
https://en.wikipedia.org/wiki/Blind_signature#Dangers_of_RSA_blind_signing

Unblinders are single-use. Generate a fresh blinding for every request and discard the
unblinder once the signature is recovered.

All randomized operations take an explicit random source; pass crypto/rand.Reader
unless you are testing with a seeded generator.
*/
package rsafdh
