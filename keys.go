package securetx

import (
	"bytes"
	"errors"

	"github.com/quantaledger/securetx-go/internal/crypto"
)

// SigningKeypair holds an ML-DSA-87 keypair for signing transaction
// records. The secret key stays inside the keypair; call
// [SigningKeypair.Close] to wipe it when the keypair's lifetime ends.
type SigningKeypair struct {
	// PublicKey is the packed public key bytes.
	PublicKey []byte

	secretKey []byte
}

// GenerateSigningKeypair creates a new ML-DSA-87 keypair from the CSPRNG.
func GenerateSigningKeypair() (*SigningKeypair, error) {
	pub, priv, err := crypto.GenerateSigningKey()
	if err != nil {
		return nil, &DataError{Field: "keypair", Reason: err.Error()}
	}
	return &SigningKeypair{PublicKey: pub, secretKey: priv}, nil
}

// NewSigningKeypairFromSeed deterministically derives a keypair from a
// 32-byte seed. The caller keeps ownership of the seed and should wipe it.
func NewSigningKeypairFromSeed(seed []byte) (*SigningKeypair, error) {
	pub, priv, err := crypto.SigningKeyFromSeed(seed)
	if err != nil {
		return nil, &DataError{Field: "seed", Reason: err.Error()}
	}
	return &SigningKeypair{PublicKey: pub, secretKey: priv}, nil
}

// SigningKeypairFromBytes reconstructs a keypair from packed key bytes.
// Both keys are validated and copied, so the caller's slices can be wiped
// independently.
func SigningKeypairFromBytes(publicKey, secretKey []byte) (*SigningKeypair, error) {
	if err := crypto.ValidateSigningKey(publicKey, secretKey); err != nil {
		field := "secret_key"
		if errors.Is(err, crypto.ErrInvalidPublicKeySize) {
			field = "public_key"
		}
		return nil, &DataError{Field: field, Reason: err.Error()}
	}

	return &SigningKeypair{
		PublicKey: bytes.Clone(publicKey),
		secretKey: bytes.Clone(secretKey),
	}, nil
}

// Close wipes the packed secret key. Idempotent and safe on nil.
func (k *SigningKeypair) Close() error {
	if k == nil {
		return nil
	}
	crypto.Zeroize(k.secretKey)
	return nil
}
