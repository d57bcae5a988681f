package codec

const (
	// DefaultHashLength is the number of hex characters kept from the
	// digest when no explicit length is configured.
	DefaultHashLength = 8

	// MinHashLength is the smallest permitted digest length in hex characters.
	MinHashLength = 1

	// MaxHashLength is the hex length of a full SHA-256 digest, the upper
	// bound for truncation.
	MaxHashLength = 64

	// PartSeparator joins alias parts and separates the digest from the
	// local prefix.
	PartSeparator = "-"
)

// ValidHashLength reports whether n is a permitted digest length.
func ValidHashLength(n int) bool {
	return n >= MinHashLength && n <= MaxHashLength
}
