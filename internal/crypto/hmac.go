package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// SignHMACSHA256 computes the HMAC-SHA256 of message under key.
// The output is always MACSize bytes. An empty key is legal per RFC 2104
// (it is padded to the block size); callers decide their own key policy.
func SignHMACSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
