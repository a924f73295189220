package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
//
// Parameters:
//   - secret: the input key material
//   - salt: optional salt value; if empty, a zero-filled salt is used
//   - info: context/application-specific info for domain separation
//   - length: desired output key length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// DeriveTagKey derives the HMAC key for a record's authentication tag from
// its cipher key and per-record salt, with MACContext as the domain
// separator. The cipher key itself is drawn directly from the CSPRNG; only
// the tag key goes through the KDF, so the two mechanisms never share key
// material.
func DeriveTagKey(cipherKey, salt []byte) ([]byte, error) {
	if len(cipherKey) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(cipherKey), AESKeySize)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}

	return DeriveKey(cipherKey, salt, []byte(MACContext), MACKeySize)
}
