package emailalias

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrEmptyAliasParts is returned when Generate is called with no alias parts.
	ErrEmptyAliasParts = errors.New("alias parts cannot be empty")

	// ErrEmptyAliasPart is returned when any individual alias part is empty.
	ErrEmptyAliasPart = errors.New("alias parts must be non-empty strings")

	// ErrEmptyDomain is returned when Generate is called with an empty domain.
	ErrEmptyDomain = errors.New("domain cannot be empty")

	// ErrHashLengthOutOfRange is returned when the configured hash length is
	// not between 1 and 64 hex characters.
	ErrHashLengthOutOfRange = errors.New("hash length must be between 1 and 64")

	// ErrPrimitiveUnavailable is returned when the keyed-hash capability is
	// missing or fails. It is fatal to the call only.
	ErrPrimitiveUnavailable = errors.New("keyed-hash primitive unavailable")

	// ErrEmptyScope is returned when DeriveScopedKey is called with an empty scope.
	ErrEmptyScope = errors.New("scope cannot be empty")

	// ErrEmptyMasterKey is returned when DeriveScopedKey is called with an
	// empty master key.
	ErrEmptyMasterKey = errors.New("master key cannot be empty")
)
