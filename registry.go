package securetx

import "sync"

// NonceRegistry tracks previously seen anti-replay nonces for the lifetime
// of the process. It starts empty and is never persisted: a restart loses
// replay history, so multi-process deployments need a durable or externally
// shared backing behind the same check-and-insert contract.
//
// Membership test and insertion happen in a single critical section under
// one mutex; no separate check and insert calls are exposed, so there is no
// window for a race between them. The lock is held only for the duration of
// the check-and-insert.
type NonceRegistry struct {
	mu sync.Mutex

	// seen holds nonces under the global-uniqueness policy.
	seen map[uint64]struct{}
	// lastBySender holds the highest accepted nonce per sender under the
	// per-sender monotonic policy.
	lastBySender map[string]uint64
}

// NewNonceRegistry returns an empty registry.
func NewNonceRegistry() *NonceRegistry {
	return &NonceRegistry{
		seen:         make(map[uint64]struct{}),
		lastBySender: make(map[string]uint64),
	}
}

// CheckAndRegister atomically tests nonce membership and inserts it.
// Returns ErrNonceReused (as a *NonceError) if the nonce was seen before.
// Intended to be called exactly once per accepted record before the record
// is considered final.
func (r *NonceRegistry) CheckAndRegister(nonce uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registerLocked(nonce)
}

// TryCheckAndRegister is CheckAndRegister for callers that cannot block:
// if the registry lock is contended the call fails with ErrLock instead of
// waiting, and the nonce is not registered.
func (r *NonceRegistry) TryCheckAndRegister(nonce uint64) error {
	if !r.mu.TryLock() {
		return ErrLock
	}
	defer r.mu.Unlock()
	return r.registerLocked(nonce)
}

func (r *NonceRegistry) registerLocked(nonce uint64) error {
	if _, ok := r.seen[nonce]; ok {
		return &NonceError{Nonce: nonce}
	}
	r.seen[nonce] = struct{}{}
	return nil
}

// CheckAndRegisterSender enforces the per-sender policy: each sender's
// nonces must be strictly increasing. A nonce at or below the sender's last
// accepted value is rejected with ErrNonceReused.
func (r *NonceRegistry) CheckAndRegisterSender(sender string, nonce uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if last, ok := r.lastBySender[sender]; ok && nonce <= last {
		return &NonceError{Sender: sender, Nonce: nonce}
	}
	r.lastBySender[sender] = nonce
	return nil
}

// Len reports how many globally unique nonces have been registered.
func (r *NonceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
