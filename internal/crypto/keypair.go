package crypto

import (
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// GenerateSigningKey creates a new ML-DSA-87 keypair and returns the packed
// public and secret key bytes.
func GenerateSigningKey() (publicKey, secretKey []byte, err error) {
	pub, priv, err := mldsa87.GenerateKey(randReader)
	if err != nil {
		return nil, nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKey
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return pubBytes, privBytes, nil
}

// SigningKeyFromSeed deterministically derives an ML-DSA-87 keypair from a
// 32-byte seed. The caller owns the seed and is responsible for wiping it.
func SigningKeyFromSeed(seed []byte) (publicKey, secretKey []byte, err error) {
	if len(seed) != MLDSASeedSize {
		return nil, nil, ErrInvalidSeedSize
	}

	var s [MLDSASeedSize]byte
	copy(s[:], seed)
	defer Zeroize(s[:])

	pub, priv := mldsa87.NewKeyFromSeed(&s)

	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return pubBytes, privBytes, nil
}

// ValidateSigningKey checks that packed public and secret key bytes have the
// correct sizes and parse as ML-DSA-87 keys.
func ValidateSigningKey(publicKey, secretKey []byte) error {
	if len(publicKey) != MLDSAPublicKeySize {
		return ErrInvalidPublicKeySize
	}
	if len(secretKey) != MLDSASecretKeySize {
		return ErrInvalidSecretKeySize
	}

	pk := &mldsa87.PublicKey{}
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return err
	}

	sk := &mldsa87.PrivateKey{}
	if err := sk.UnmarshalBinary(secretKey); err != nil {
		return err
	}

	return nil
}
