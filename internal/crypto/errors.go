package crypto

import "errors"

var (
	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSeedSize is returned when a key-derivation seed has the wrong size.
	ErrInvalidSeedSize = errors.New("invalid seed size")

	// ErrSignatureVerificationFailed is returned when signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrDecryptionFailed is returned when AEAD decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the AES-GCM nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSaltSize is returned when the KDF salt size is invalid.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrRandomSource is returned when the CSPRNG cannot produce the
	// requested bytes. Random failure is always hard; there is no fallback
	// to a weaker source.
	ErrRandomSource = errors.New("random source failure")
)
