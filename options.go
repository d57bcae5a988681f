package emailalias

import "github.com/CutTheCrapTech/email-alias-core/internal/codec"

// Hash length bounds, re-exported for callers.
const (
	// DefaultHashLength is the number of hex characters kept from the
	// digest when WithHashLength is not supplied.
	DefaultHashLength = codec.DefaultHashLength
	// MaxHashLength is the hex length of a full SHA-256 digest, the upper
	// bound for WithHashLength.
	MaxHashLength = codec.MaxHashLength
)

// codecConfig holds configuration for a Codec.
type codecConfig struct {
	hashLength int
	provider   KeyedHashProvider
}

// Option configures a Codec.
type Option func(*codecConfig)

// WithHashLength sets how many hex characters of the digest are kept.
// Must be between 1 and MaxHashLength. Default: DefaultHashLength.
//
// Generation and validation must agree on this value: an alias minted at
// one length never verifies at another.
func WithHashLength(n int) Option {
	return func(c *codecConfig) {
		c.hashLength = n
	}
}

// WithProvider sets the keyed-hash provider. The provider must implement
// HMAC-SHA256 semantics or no alias will be interoperable with other
// implementations. Default: the process-local HMACProvider.
func WithProvider(p KeyedHashProvider) Option {
	return func(c *codecConfig) {
		c.provider = p
	}
}
