package emailalias

import (
	"context"
	"fmt"

	"github.com/CutTheCrapTech/email-alias-core/internal/codec"
)

// Codec generates and validates keyed email aliases. It holds only
// configuration (digest length and the keyed-hash provider); every call is
// pure given its inputs, so a single Codec may be shared freely across
// goroutines.
type Codec struct {
	hashLength int
	provider   KeyedHashProvider
}

// New creates a Codec. Without options it uses DefaultHashLength and the
// in-process HMAC-SHA256 provider.
func New(opts ...Option) (*Codec, error) {
	cfg := &codecConfig{
		hashLength: codec.DefaultHashLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !codec.ValidHashLength(cfg.hashLength) {
		return nil, fmt.Errorf("%w: got %d", ErrHashLengthOutOfRange, cfg.hashLength)
	}
	if cfg.provider == nil {
		cfg.provider = NewHMACProvider()
	}

	return &Codec{
		hashLength: cfg.hashLength,
		provider:   cfg.provider,
	}, nil
}

// HashLength returns the configured digest length in hex characters.
func (c *Codec) HashLength() int {
	return c.hashLength
}

// Generate mints the alias for the given parts and domain under secretKey.
//
// The parts are joined with "-" into the local prefix, the prefix is fed to
// the keyed hash, and the digest is truncated to the configured length:
//
//	<part1>-...-<partN>-<digest>@<domain>
//
// Identical inputs always yield the identical string. Parts and domain are
// used verbatim; nothing is normalized or escaped, so a part containing "-"
// is accepted and simply becomes indistinguishable from two parts in the
// resulting address.
func (c *Codec) Generate(ctx context.Context, secretKey string, aliasParts []string, domain string) (string, error) {
	if len(aliasParts) == 0 {
		return "", ErrEmptyAliasParts
	}
	for _, part := range aliasParts {
		if part == "" {
			return "", ErrEmptyAliasPart
		}
	}
	if domain == "" {
		return "", ErrEmptyDomain
	}

	prefix := codec.JoinParts(aliasParts)
	digest, err := c.computeDigest(ctx, secretKey, prefix)
	if err != nil {
		return "", err
	}

	return codec.Assemble(prefix, digest, domain), nil
}

// Validate reports whether fullAlias was minted by Generate under
// secretKey at the configured hash length.
//
// Validation is total over string inputs: any structural defect (missing
// or repeated "@", empty local part or domain, missing digest segment,
// wrong digest length or alphabet) and any digest mismatch yields
// (false, nil). The only error condition is a failing keyed-hash provider.
//
// The expected digest is recomputed from the full recovered prefix, not
// from resplit parts, and compared in constant time.
func (c *Codec) Validate(ctx context.Context, secretKey, fullAlias string) (bool, error) {
	parsed, ok := codec.Parse(fullAlias, c.hashLength)
	if !ok {
		return false, nil
	}

	expected, err := c.computeDigest(ctx, secretKey, parsed.LocalPrefix)
	if err != nil {
		return false, err
	}

	return codec.DigestsEqual(parsed.Digest, expected), nil
}

// computeDigest runs the shared hashing routine: canonical message from the
// local prefix, keyed hash, lowercase hex, truncation.
func (c *Codec) computeDigest(ctx context.Context, secretKey, localPrefix string) (string, error) {
	if c.provider == nil {
		return "", ErrPrimitiveUnavailable
	}

	mac, err := c.provider.Sign(ctx, []byte(secretKey), codec.CanonicalMessage(localPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}

	digest, err := codec.TruncatedHex(mac, c.hashLength)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}

	return digest, nil
}

// Generate mints an alias with a one-off Codec built from opts.
// See [Codec.Generate].
func Generate(ctx context.Context, secretKey string, aliasParts []string, domain string, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Generate(ctx, secretKey, aliasParts, domain)
}

// Validate checks an alias with a one-off Codec built from opts.
// See [Codec.Validate].
func Validate(ctx context.Context, secretKey, fullAlias string, opts ...Option) (bool, error) {
	c, err := New(opts...)
	if err != nil {
		return false, err
	}
	return c.Validate(ctx, secretKey, fullAlias)
}
