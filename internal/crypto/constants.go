package crypto

import "crypto/sha256"

const (
	// MACSize is the size of an HMAC-SHA256 digest in bytes.
	MACSize = sha256.Size

	// ScopedKeySize is the size of a derived per-scope key in bytes.
	ScopedKeySize = 32

	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "email-alias:scoped-key:v1"
)
