package codec

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// TruncatedHex encodes mac as lowercase hex and keeps the first n
// characters. It fails if the mac is too short to supply n hex characters,
// which for a conforming HMAC-SHA256 provider can only happen when the
// provider misbehaves.
func TruncatedHex(mac []byte, n int) (string, error) {
	digest := hex.EncodeToString(mac)
	if n > len(digest) {
		return "", fmt.Errorf("keyed hash returned %d hex characters, need %d", len(digest), n)
	}
	return digest[:n], nil
}

// DigestsEqual compares two hex digests in constant time. Both inputs must
// already have equal length; unequal lengths compare false immediately,
// which leaks nothing because the candidate's length is checked
// structurally before any secret-derived data is involved.
func DigestsEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// IsLowerHex reports whether s is non-empty and consists only of
// lowercase hexadecimal characters.
func IsLowerHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
