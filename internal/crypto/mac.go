package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"crypto/subtle"
)

// Tag computes an HMAC-SHA-512 authentication tag over message with a key
// derived from (cipherKey, salt) via DeriveTagKey. The derived key is wiped
// before returning.
func Tag(cipherKey, salt, message []byte) ([]byte, error) {
	key, err := DeriveTagKey(cipherKey, salt)
	if err != nil {
		return nil, err
	}
	defer Zeroize(key)

	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// ConstantTimeEqualMask compares two byte slices in constant time and
// returns 1 if they are equal, 0 otherwise. Unlike hmac.Equal it returns an
// integer mask so callers can combine outcomes with bitwise AND instead of
// branching.
func ConstantTimeEqualMask(a, b []byte) int {
	if len(a) != len(b) {
		// Still touch the data so length mismatches don't return early
		// relative to content mismatches of the same size.
		subtle.ConstantTimeCompare(a, a)
		return 0
	}
	return subtle.ConstantTimeCompare(a, b)
}
