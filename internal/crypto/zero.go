package crypto

import "runtime"

// Zeroize overwrites b with zero bytes. The explicit store loop plus the
// KeepAlive fence keeps the compiler from treating the writes as dead
// stores when b is about to go out of scope.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// IsZeroed reports whether every byte of b is zero. Test hook for wipe
// verification; not constant-time.
func IsZeroed(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
