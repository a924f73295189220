// Package securetx implements a post-quantum secure-transaction protocol:
// a transaction record that is confidentiality-protected with AES-256-GCM,
// integrity-protected with a derived HMAC-SHA-512 tag, authenticity-protected
// with an ML-DSA-87 detached signature, and replay-protected through a
// tracked nonce registry.
//
// Basic usage:
//
//	keypair, err := securetx.GenerateSigningKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer keypair.Close()
//
//	record, err := securetx.Construct("alice", "bob", 1000, time.Now().Unix(), 42, keypair)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer record.Close()
//
//	// Gate replays once per accepted record.
//	if err := registry.CheckAndRegister(record.Nonce); err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := securetx.Verify(record, record.PublicKey, record.Signature)
//
// Verification always evaluates the tag, decryptability, and signature
// checks and reports failure uniformly as [ErrInvalidSignature]; neither
// the error nor the response latency reveals which check failed.
//
// Ledger storage, contract execution, networking, and persistence are
// external collaborators: this package only consumes cryptographic
// primitives and exposes the record type plus construct, verify, and
// replay-check operations.
package securetx
