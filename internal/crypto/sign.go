package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// Sign produces an ML-DSA-87 detached signature over message using the
// packed secret key bytes. Signing is deterministic (hedged signing is not
// used) so repeated signing of the same payload yields the same signature.
func Sign(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	sk := &mldsa87.PrivateKey{}
	if err := sk.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("failed to parse secret key: %w", err)
	}

	sig := make([]byte, mldsa87.SignatureSize)
	if err := mldsa87.SignTo(sk, message, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify verifies an ML-DSA-87 detached signature.
func Verify(publicKey, message, signature []byte) error {
	pk := &mldsa87.PublicKey{}
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}

	if !mldsa87.Verify(pk, message, nil, signature) {
		return ErrSignatureVerificationFailed
	}

	return nil
}

// VerifySafe verifies a signature without returning an error.
// Returns true if the signature is valid, false otherwise.
func VerifySafe(publicKey, message, signature []byte) bool {
	return Verify(publicKey, message, signature) == nil
}
