package securetx

import (
	"fmt"
	"strings"

	"github.com/quantaledger/securetx-go/internal/crypto"
)

// MaxSignatureSize is the largest detached signature the configured
// post-quantum scheme produces (ML-DSA-87, a Dilithium5-class scheme).
// A signature above this size means the primitive misbehaved.
const MaxSignatureSize = crypto.MLDSASignatureSize

// payloadSeparator joins the canonical payload fields. It must not appear
// in sender or recipient identifiers or the encoding would be ambiguous;
// Construct rejects identifiers containing it.
const payloadSeparator = ":"

// TransactionRecord is a monetary transfer protected four ways: the
// canonical payload is sealed with AES-256-GCM (confidentiality),
// authenticated with an HMAC-SHA-512 tag (integrity), signed with ML-DSA-87
// (authenticity), and carries a nonce tracked by a NonceRegistry (replay
// protection).
//
// Records only come out of [Construct]; no partially built record is ever
// exposed. After construction a record is read-only to collaborators.
// Call [TransactionRecord.Close] when the record's lifetime ends to wipe
// its secret-bearing fields.
type TransactionRecord struct {
	// Sender and Recipient are opaque identifiers. They must not contain
	// the payload separator ":".
	Sender    string
	Recipient string
	// Amount is the transferred quantity.
	Amount uint64
	// Timestamp is a unix epoch value in seconds.
	Timestamp int64
	// Nonce is the anti-replay value, unique per registry policy.
	Nonce uint64

	// Signature is the ML-DSA-87 detached signature over the canonical
	// payload. Wiped on Close.
	Signature []byte
	// PublicKey is the signer's packed public key, carried alongside the
	// record for self-contained verification. Not secret.
	PublicKey []byte
	// CipherKey is the AES-256 key sealing the canonical payload. Drawn
	// directly from the CSPRNG, never reused across records. Wiped on Close.
	CipherKey []byte
	// EncryptedData is the AES-256-GCM ciphertext of the canonical payload.
	// Wiped on Close.
	EncryptedData []byte
	// IV is the AES-GCM nonce.
	IV []byte
	// Salt feeds the HKDF derivation of the tag key from CipherKey.
	Salt []byte
	// MAC is the HMAC-SHA-512 tag over the canonical payload, keyed by
	// HKDF(CipherKey, Salt). Wiped on Close.
	MAC []byte
}

// CanonicalPayload returns the deterministic byte encoding of the record's
// public fields. Encryption, the tag, and the signature all cover exactly
// this encoding.
func (r *TransactionRecord) CanonicalPayload() []byte {
	return canonicalPayload(r.Sender, r.Recipient, r.Amount, r.Timestamp, r.Nonce)
}

func canonicalPayload(sender, recipient string, amount uint64, timestamp int64, nonce uint64) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d:%d:%d", sender, recipient, amount, timestamp, nonce))
}

// validateIdentifier rejects identifiers that are empty or would make the
// canonical payload ambiguous.
func validateIdentifier(field, value string) error {
	if value == "" {
		return &DataError{Field: field, Reason: "must not be empty"}
	}
	if strings.Contains(value, payloadSeparator) {
		return &DataError{Field: field, Reason: fmt.Sprintf("must not contain %q", payloadSeparator)}
	}
	return nil
}

// Close wipes the record's secret-bearing fields (cipher key, signature,
// ciphertext, and tag) with zero bytes. The public fields, the public key,
// IV, and salt carry no secrets and are left intact. Close is idempotent
// and safe on a nil record; call it with defer so the wipe runs on every
// exit path.
func (r *TransactionRecord) Close() error {
	if r == nil {
		return nil
	}
	crypto.Zeroize(r.CipherKey)
	crypto.Zeroize(r.Signature)
	crypto.Zeroize(r.EncryptedData)
	crypto.Zeroize(r.MAC)
	return nil
}
