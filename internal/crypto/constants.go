package crypto

const (
	// MACContext is the domain-separation string fed to HKDF when deriving
	// the tag key from the cipher key.
	MACContext = "securetx:tag:v1"

	// MLDSAPublicKeySize is the size of an ML-DSA-87 public key in bytes.
	MLDSAPublicKeySize = 2592
	// MLDSASecretKeySize is the size of an ML-DSA-87 secret key in bytes.
	MLDSASecretKeySize = 4896
	// MLDSASignatureSize is the size of an ML-DSA-87 detached signature in bytes.
	MLDSASignatureSize = 4627
	// MLDSASeedSize is the size of the seed accepted for deterministic
	// ML-DSA-87 key derivation.
	MLDSASeedSize = 32

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// SaltSize is the size of the per-record KDF salt in bytes.
	SaltSize = 32
	// MACKeySize is the size of the derived HMAC-SHA-512 key in bytes.
	MACKeySize = 64
	// MACSize is the size of an HMAC-SHA-512 tag in bytes.
	MACSize = 64
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "ML-DSA-87:AES-256-GCM:HKDF-SHA-512:HMAC-SHA-512"
