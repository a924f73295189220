package securetx

import (
	"io"

	"github.com/quantaledger/securetx-go/internal/crypto"
)

// Suite is the capability set of cryptographic primitives the protocol
// consumes: a CSPRNG, a post-quantum detached-signature scheme, an
// authenticated symmetric cipher, a keyed tag, and a secure-zero primitive.
// Alternative schemes can be substituted without touching the protocol logic
// via [WithSuite].
type Suite interface {
	// Random returns n secret-quality random bytes. Failure must be a hard
	// error, never a silent fallback to a weaker source.
	Random(n int) ([]byte, error)

	// Sign produces a detached signature over message with the packed
	// secret key.
	Sign(secretKey, message []byte) ([]byte, error)

	// VerifySignature reports whether signature is valid over message for
	// the packed public key.
	VerifySignature(publicKey, message, signature []byte) bool

	// Seal encrypts plaintext under (key, nonce) with authentication.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open decrypts and authenticates ciphertext under (key, nonce).
	Open(key, nonce, ciphertext []byte) ([]byte, error)

	// Tag computes an authentication tag over message bound to (key, salt).
	Tag(key, salt, message []byte) ([]byte, error)

	// Zeroize overwrites b in place, resistant to dead-store elimination.
	Zeroize(b []byte)
}

// stdSuite is the default Suite: ML-DSA-87 signatures, AES-256-GCM sealing,
// and HKDF-SHA-512-keyed HMAC-SHA-512 tags.
type stdSuite struct {
	rand io.Reader // nil means crypto/rand
}

// DefaultSuite returns the standard primitive set.
func DefaultSuite() Suite {
	return &stdSuite{}
}

func (s *stdSuite) Random(n int) ([]byte, error) {
	if s.rand != nil {
		return crypto.RandomFrom(s.rand, n)
	}
	return crypto.Random(n)
}

func (s *stdSuite) Sign(secretKey, message []byte) ([]byte, error) {
	return crypto.Sign(secretKey, message)
}

func (s *stdSuite) VerifySignature(publicKey, message, signature []byte) bool {
	return crypto.VerifySafe(publicKey, message, signature)
}

func (s *stdSuite) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	return crypto.SealAES(key, nonce, plaintext)
}

func (s *stdSuite) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	return crypto.OpenAES(key, nonce, ciphertext)
}

func (s *stdSuite) Tag(key, salt, message []byte) ([]byte, error) {
	return crypto.Tag(key, salt, message)
}

func (s *stdSuite) Zeroize(b []byte) {
	crypto.Zeroize(b)
}
