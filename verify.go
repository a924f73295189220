package securetx

import (
	"github.com/quantaledger/securetx-go/internal/crypto"
)

// Verify re-checks a record against a claimed public key and detached
// signature. Three independent checks run unconditionally:
//
//   - tag: recompute the authentication tag under (CipherKey, Salt) and
//     compare to MAC
//   - decryptability: open EncryptedData under (CipherKey, IV)
//   - signature: verify the claimed signature over the canonical
//     re-serialization with the claimed public key
//
// The outcomes are combined with a bitwise AND over constant-time masks,
// never with short-circuiting control flow, so response latency does not
// reveal which check failed. On failure the error is uniformly
// ErrInvalidSignature with no sub-check attribution.
func Verify(rec *TransactionRecord, publicKey, signature []byte, opts ...Option) (bool, error) {
	cfg := newConfig(opts)

	if err := checkRecordShape(rec); err != nil {
		return false, err
	}

	_, ok := runChecks(cfg.suite, rec, publicKey, signature)
	if ok != 1 {
		return false, ErrInvalidSignature
	}
	return true, nil
}

// VerifyWithDecryption performs the same three checks as Verify and
// additionally asserts that the decrypted plaintext equals the canonical
// re-serialization of the public fields byte for byte. Defense in depth:
// if the tag algorithm were ever weaker than full AEAD, plaintext
// substitution would still be caught here.
func VerifyWithDecryption(rec *TransactionRecord, publicKey, signature []byte, opts ...Option) (bool, error) {
	cfg := newConfig(opts)

	if err := checkRecordShape(rec); err != nil {
		return false, err
	}

	plaintext, ok := runChecks(cfg.suite, rec, publicKey, signature)
	ok &= crypto.ConstantTimeEqualMask(plaintext, rec.CanonicalPayload())
	if ok != 1 {
		return false, ErrInvalidSignature
	}
	return true, nil
}

// checkRecordShape rejects records whose key material has the wrong length
// before the masked phase. These are structural defects of the input, not
// verification outcomes, so they surface as ErrInvalidData.
func checkRecordShape(rec *TransactionRecord) error {
	if rec == nil {
		return &DataError{Field: "record", Reason: "record is nil"}
	}
	if len(rec.CipherKey) != crypto.AESKeySize {
		return &DataError{Field: "cipher_key", Reason: "wrong length"}
	}
	if len(rec.IV) != crypto.AESNonceSize {
		return &DataError{Field: "iv", Reason: "wrong length"}
	}
	if len(rec.Salt) != crypto.SaltSize {
		return &DataError{Field: "salt", Reason: "wrong length"}
	}
	return nil
}

// runChecks evaluates all three verification checks and returns the
// decrypted plaintext (nil when decryption failed) and the combined 0/1
// mask. Every check always runs; results never gate each other.
func runChecks(suite Suite, rec *TransactionRecord, publicKey, signature []byte) ([]byte, int) {
	payload := rec.CanonicalPayload()

	tagOK := 0
	expectedTag, tagErr := suite.Tag(rec.CipherKey, rec.Salt, payload)
	if tagErr == nil {
		tagOK = crypto.ConstantTimeEqualMask(expectedTag, rec.MAC)
	}

	decOK := 0
	plaintext, openErr := suite.Open(rec.CipherKey, rec.IV, rec.EncryptedData)
	if openErr == nil {
		decOK = 1
	}

	sigOK := 0
	if suite.VerifySignature(publicKey, payload, signature) {
		sigOK = 1
	}

	return plaintext, tagOK & decOK & sigOK
}
