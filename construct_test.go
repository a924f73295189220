package securetx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantaledger/securetx-go/internal/crypto"
)

func newTestKeypair(t *testing.T) *SigningKeypair {
	t.Helper()
	kp, err := GenerateSigningKeypair()
	require.NoError(t, err)
	t.Cleanup(func() { _ = kp.Close() })
	return kp
}

func TestConstruct_RoundTrip(t *testing.T) {
	kp := newTestKeypair(t)

	rec, err := Construct("alice", "bob", 1000, 1700000000, 42, kp)
	require.NoError(t, err)
	defer rec.Close()

	assert.Equal(t, "alice", rec.Sender)
	assert.Equal(t, "bob", rec.Recipient)
	assert.Equal(t, uint64(1000), rec.Amount)
	assert.Equal(t, int64(1700000000), rec.Timestamp)
	assert.Equal(t, uint64(42), rec.Nonce)

	assert.Len(t, rec.CipherKey, crypto.AESKeySize)
	assert.Len(t, rec.IV, crypto.AESNonceSize)
	assert.Len(t, rec.Salt, crypto.SaltSize)
	assert.Len(t, rec.MAC, crypto.MACSize)
	assert.LessOrEqual(t, len(rec.Signature), MaxSignatureSize)
	assert.Equal(t, kp.PublicKey, rec.PublicKey)

	ok, err := Verify(rec, rec.PublicKey, rec.Signature)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConstruct_InvalidIdentifiers(t *testing.T) {
	kp := newTestKeypair(t)

	tests := []struct {
		name              string
		sender, recipient string
	}{
		{"empty sender", "", "bob"},
		{"empty recipient", "alice", ""},
		{"separator in sender", "ali:ce", "bob"},
		{"separator in recipient", "alice", "b:ob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Construct(tt.sender, tt.recipient, 1, 1700000000, 1, kp)
			require.ErrorIs(t, err, ErrInvalidData)
			assert.Nil(t, rec)
		})
	}
}

func TestConstruct_NilKeypair(t *testing.T) {
	rec, err := Construct("alice", "bob", 1, 1700000000, 1, nil)
	require.ErrorIs(t, err, ErrInvalidData)
	assert.Nil(t, rec)
}

func TestConstruct_FreshSecretsPerRecord(t *testing.T) {
	kp := newTestKeypair(t)

	a, err := Construct("alice", "bob", 1, 1700000000, 1, kp)
	require.NoError(t, err)
	defer a.Close()

	b, err := Construct("alice", "bob", 1, 1700000000, 2, kp)
	require.NoError(t, err)
	defer b.Close()

	assert.False(t, bytes.Equal(a.CipherKey, b.CipherKey), "cipher keys reused across records")
	assert.False(t, bytes.Equal(a.IV, b.IV), "IVs reused across records")
	assert.False(t, bytes.Equal(a.Salt, b.Salt), "salts reused across records")
}

func TestConstruct_CiphertextCarriesCanonicalPayload(t *testing.T) {
	kp := newTestKeypair(t)

	rec, err := Construct("alice", "bob", 1000, 1700000000, 42, kp)
	require.NoError(t, err)
	defer rec.Close()

	plaintext, err := crypto.OpenAES(rec.CipherKey, rec.IV, rec.EncryptedData)
	require.NoError(t, err)
	assert.Equal(t, []byte("alice:bob:1000:1700000000:42"), plaintext)
	assert.Equal(t, rec.CanonicalPayload(), plaintext)
}

func TestConstruct_SignatureSizeInvariant(t *testing.T) {
	kp := newTestKeypair(t)

	for i := 0; i < 25; i++ {
		rec, err := Construct("alice", "bob", uint64(i), 1700000000, uint64(i), kp)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(rec.Signature), MaxSignatureSize)
		require.NoError(t, rec.Close())
	}
}

// oversizedSigSuite wraps the default suite but returns a signature over the
// scheme maximum, standing in for a misbehaving primitive.
type oversizedSigSuite struct {
	Suite
}

func (s *oversizedSigSuite) Sign(secretKey, message []byte) ([]byte, error) {
	return make([]byte, MaxSignatureSize+1), nil
}

func TestConstruct_SignatureTooLarge(t *testing.T) {
	kp := newTestKeypair(t)

	rec, err := Construct("alice", "bob", 1, 1700000000, 1, kp,
		WithSuite(&oversizedSigSuite{Suite: DefaultSuite()}))
	require.ErrorIs(t, err, ErrSignatureTooLarge)
	assert.Nil(t, rec)
}

// failingSignSuite fails at the signing step so construction must discard
// the partially built record.
type failingSignSuite struct {
	Suite
	zeroized [][]byte
}

func (s *failingSignSuite) Sign(secretKey, message []byte) ([]byte, error) {
	return nil, assert.AnError
}

func (s *failingSignSuite) Zeroize(b []byte) {
	s.zeroized = append(s.zeroized, b)
	s.Suite.Zeroize(b)
}

func TestConstruct_AtomicOnFailure(t *testing.T) {
	kp := newTestKeypair(t)

	suite := &failingSignSuite{Suite: DefaultSuite()}
	rec, err := Construct("alice", "bob", 1, 1700000000, 1, kp, WithSuite(suite))
	require.ErrorIs(t, err, ErrInvalidData)
	assert.Nil(t, rec)

	require.NotEmpty(t, suite.zeroized, "partial secrets were not wiped")
	for _, buf := range suite.zeroized {
		assert.True(t, crypto.IsZeroed(buf))
	}
}

func TestConstruct_WithRandDeterministic(t *testing.T) {
	kp := newTestKeypair(t)

	mkRand := func() *bytes.Reader {
		return bytes.NewReader(bytes.Repeat([]byte{0x7E}, 256))
	}

	a, err := Construct("alice", "bob", 1, 1700000000, 1, kp, WithRand(mkRand()))
	require.NoError(t, err)
	defer a.Close()

	b, err := Construct("alice", "bob", 1, 1700000000, 1, kp, WithRand(mkRand()))
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, a.CipherKey, b.CipherKey)
	assert.Equal(t, a.IV, b.IV)
	assert.Equal(t, a.Salt, b.Salt)
	assert.Equal(t, a.MAC, b.MAC)
	assert.Equal(t, a.EncryptedData, b.EncryptedData)
}
