package emailalias

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/CutTheCrapTech/email-alias-core/internal/crypto"
)

// NewSecretKey generates a fresh 256-bit secret key encoded as URL-safe
// base64 without padding. The encoding is a convenience; the codec treats
// keys as opaque strings and never decodes them.
func NewSecretKey() (string, error) {
	key := make([]byte, crypto.ScopedKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

// DeriveScopedKey derives an independent signing key from masterKey for the
// given scope (typically a domain or deployment name) using HKDF-SHA256
// with domain separation. Disclosing a scoped key does not expose the
// master key or any other scope's key.
//
// The derivation is deterministic: the same master key and scope always
// produce the same scoped key, so scoped keys need not be stored.
func DeriveScopedKey(masterKey, scope string) (string, error) {
	if masterKey == "" {
		return "", ErrEmptyMasterKey
	}
	if scope == "" {
		return "", ErrEmptyScope
	}

	info := []byte(crypto.HKDFContext + ":" + scope)
	key, err := crypto.DeriveKey([]byte(masterKey), nil, info, crypto.ScopedKeySize)
	if err != nil {
		return "", fmt.Errorf("derive scoped key: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}
