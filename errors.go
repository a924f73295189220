package securetx

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidSignature is returned when verification fails. It covers all
	// three sub-checks (tag, decryptability, signature) uniformly so the
	// error itself cannot be used as an oracle for which one failed.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidData is returned for malformed key or nonce lengths,
	// decryption setup failures, and serialization inconsistencies.
	ErrInvalidData = errors.New("invalid transaction data")

	// ErrSignatureTooLarge is returned when the produced signature exceeds
	// MaxSignatureSize.
	ErrSignatureTooLarge = errors.New("signature exceeds maximum size")

	// ErrNonceReused is returned when a nonce is presented to the registry
	// a second time.
	ErrNonceReused = errors.New("nonce already used")

	// ErrLock is returned when the registry's exclusive-access lock could
	// not be acquired.
	ErrLock = errors.New("registry lock unavailable")
)

// SecureTxError is implemented by all typed errors in this package.
type SecureTxError interface {
	error
	SecureTxError() // marker method
}

// DataError reports which field of a construction or verification input was
// malformed. It matches ErrInvalidData under errors.Is.
type DataError struct {
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid transaction data: %s: %s", e.Field, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *DataError) Is(target error) bool {
	return target == ErrInvalidData
}

// SecureTxError implements the SecureTxError interface.
func (e *DataError) SecureTxError() {}

// NonceError reports a replayed nonce. It matches ErrNonceReused under
// errors.Is. Sender is empty under the global-uniqueness policy.
type NonceError struct {
	Sender string
	Nonce  uint64
}

func (e *NonceError) Error() string {
	if e.Sender != "" {
		return fmt.Sprintf("nonce %d already used by sender %q", e.Nonce, e.Sender)
	}
	return fmt.Sprintf("nonce %d already used", e.Nonce)
}

// Is implements errors.Is for sentinel error matching.
func (e *NonceError) Is(target error) bool {
	return target == ErrNonceReused
}

// SecureTxError implements the SecureTxError interface.
func (e *NonceError) SecureTxError() {}
