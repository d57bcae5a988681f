package emailalias

import (
	"context"

	"github.com/CutTheCrapTech/email-alias-core/internal/crypto"
)

// KeyedHashProvider is the capability the codec depends on: a deterministic
// keyed hash with HMAC-SHA256 semantics (fixed 32-byte output, avalanche on
// any key or message bit). Implementations must be side-effect-free from
// the caller's perspective and safe for concurrent use.
//
// The context is part of the contract because a provider may be backed by
// a remote or hardware signer; the shipped HMACProvider only observes
// cancellation.
type KeyedHashProvider interface {
	Sign(ctx context.Context, key, message []byte) ([]byte, error)
}

// HMACProvider is the default KeyedHashProvider, computing HMAC-SHA256
// in-process with the standard library.
type HMACProvider struct{}

// NewHMACProvider creates the default in-process HMAC-SHA256 provider.
func NewHMACProvider() *HMACProvider {
	return &HMACProvider{}
}

// Sign computes HMAC-SHA256(key, message).
func (*HMACProvider) Sign(ctx context.Context, key, message []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return crypto.SignHMACSHA256(key, message), nil
}
