package securetx

import (
	"bytes"

	"github.com/quantaledger/securetx-go/internal/crypto"
)

// Construct builds a fully protected TransactionRecord in one atomic step:
// fresh salt, IV, and cipher key from the CSPRNG, canonical serialization,
// AES-256-GCM sealing, tag generation, and ML-DSA-87 signing. Any failure
// wipes the partially built secrets and returns only the error; a record
// with a missing tag or signature is never returned.
//
// The caller supplies the timestamp and nonce; replay gating of the nonce
// happens separately through [NonceRegistry.CheckAndRegister].
func Construct(sender, recipient string, amount uint64, timestamp int64, nonce uint64, keypair *SigningKeypair, opts ...Option) (*TransactionRecord, error) {
	cfg := newConfig(opts)
	suite := cfg.suite

	if keypair == nil || len(keypair.secretKey) == 0 {
		return nil, &DataError{Field: "keypair", Reason: "signing keypair is required"}
	}
	if err := validateIdentifier("sender", sender); err != nil {
		return nil, err
	}
	if err := validateIdentifier("recipient", recipient); err != nil {
		return nil, err
	}

	// Salt, IV, and cipher key are each drawn independently; the cipher key
	// is not derived from the salt. The salt keys the tag derivation.
	salt, err := suite.Random(crypto.SaltSize)
	if err != nil {
		return nil, err
	}
	iv, err := suite.Random(crypto.AESNonceSize)
	if err != nil {
		return nil, err
	}
	cipherKey, err := suite.Random(crypto.AESKeySize)
	if err != nil {
		return nil, err
	}

	// From here on every failure path must wipe the secrets already built.
	fail := func(err error, secrets ...[]byte) (*TransactionRecord, error) {
		for _, s := range secrets {
			suite.Zeroize(s)
		}
		suite.Zeroize(cipherKey)
		return nil, err
	}

	payload := canonicalPayload(sender, recipient, amount, timestamp, nonce)

	encrypted, err := suite.Seal(cipherKey, iv, payload)
	if err != nil {
		return fail(&DataError{Field: "cipher", Reason: err.Error()})
	}

	mac, err := suite.Tag(cipherKey, salt, payload)
	if err != nil {
		return fail(&DataError{Field: "mac", Reason: err.Error()}, encrypted)
	}

	signature, err := suite.Sign(keypair.secretKey, payload)
	if err != nil {
		return fail(&DataError{Field: "signing_key", Reason: err.Error()}, encrypted, mac)
	}

	if len(signature) > MaxSignatureSize {
		return fail(ErrSignatureTooLarge, encrypted, mac, signature)
	}

	return &TransactionRecord{
		Sender:        sender,
		Recipient:     recipient,
		Amount:        amount,
		Timestamp:     timestamp,
		Nonce:         nonce,
		Signature:     signature,
		PublicKey:     bytes.Clone(keypair.PublicKey),
		CipherKey:     cipherKey,
		EncryptedData: encrypted,
		IV:            iv,
		Salt:          salt,
		MAC:           mac,
	}, nil
}
