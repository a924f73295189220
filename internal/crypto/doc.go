// Package crypto provides the cryptographic primitives for the securetx
// transaction protocol. It composes post-quantum signatures, authenticated
// encryption, key derivation, and secure zeroization behind small functions
// the protocol layer consumes.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - ML-DSA-87 (NIST FIPS 204): Post-quantum digital signature algorithm.
//     A Dilithium5-class scheme with a 4627-byte detached signature,
//     providing 256-bit classical security.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for sealing the canonical transaction payload.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation function used to derive the
//     per-record tag key from the cipher key and salt with domain separation.
//
//   - HMAC-SHA-512: Authentication tag over the canonical payload, keyed
//     independently of the AEAD so integrity does not ride solely on the
//     cipher.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. Every record draws a
// fresh key, nonce, and salt from the CSPRNG, and CSPRNG failure is a hard
// error ([ErrRandomSource]); there is never a fallback to a weaker source.
//
// Secret key material must be wiped with [Zeroize] when its lifetime ends.
// Keep secret keys secure: they should never be logged, transmitted in
// plaintext, or stored in version control.
package crypto
