package securetx

import (
	"encoding/json"
	"fmt"

	"github.com/quantaledger/securetx-go/internal/crypto"
)

// wireRecord is the portable JSON form of a TransactionRecord. Byte fields
// are base64url-encoded without padding. The outer persistence and network
// layers own the framing around this encoding; the record only guarantees
// that every field round-trips losslessly.
type wireRecord struct {
	Sender        string `json:"sender"`
	Recipient     string `json:"recipient"`
	Amount        uint64 `json:"amount"`
	Timestamp     int64  `json:"timestamp"`
	Nonce         uint64 `json:"nonce"`
	Signature     string `json:"signature"`
	PublicKey     string `json:"public_key"`
	CipherKey     string `json:"cipher_key"`
	EncryptedData string `json:"encrypted_data"`
	IV            string `json:"iv"`
	Salt          string `json:"salt"`
	MAC           string `json:"mac"`
}

// MarshalJSON implements json.Marshaler.
func (r *TransactionRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRecord{
		Sender:        r.Sender,
		Recipient:     r.Recipient,
		Amount:        r.Amount,
		Timestamp:     r.Timestamp,
		Nonce:         r.Nonce,
		Signature:     crypto.ToBase64URL(r.Signature),
		PublicKey:     crypto.ToBase64URL(r.PublicKey),
		CipherKey:     crypto.ToBase64URL(r.CipherKey),
		EncryptedData: crypto.ToBase64URL(r.EncryptedData),
		IV:            crypto.ToBase64URL(r.IV),
		Salt:          crypto.ToBase64URL(r.Salt),
		MAC:           crypto.ToBase64URL(r.MAC),
	})
}

// UnmarshalJSON implements json.Unmarshaler. Malformed encodings surface as
// ErrInvalidData.
func (r *TransactionRecord) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return &DataError{Field: "record", Reason: err.Error()}
	}

	decoded := make(map[string][]byte, 7)
	for field, encoded := range map[string]string{
		"signature":      w.Signature,
		"public_key":     w.PublicKey,
		"cipher_key":     w.CipherKey,
		"encrypted_data": w.EncryptedData,
		"iv":             w.IV,
		"salt":           w.Salt,
		"mac":            w.MAC,
	} {
		b, err := crypto.FromBase64URL(encoded)
		if err != nil {
			return &DataError{Field: field, Reason: fmt.Sprintf("invalid base64url: %v", err)}
		}
		decoded[field] = b
	}

	r.Sender = w.Sender
	r.Recipient = w.Recipient
	r.Amount = w.Amount
	r.Timestamp = w.Timestamp
	r.Nonce = w.Nonce
	r.Signature = decoded["signature"]
	r.PublicKey = decoded["public_key"]
	r.CipherKey = decoded["cipher_key"]
	r.EncryptedData = decoded["encrypted_data"]
	r.IV = decoded["iv"]
	r.Salt = decoded["salt"]
	r.MAC = decoded["mac"]
	return nil
}
