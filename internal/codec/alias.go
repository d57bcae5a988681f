package codec

import "strings"

// Parsed holds the components recovered from a candidate alias string.
type Parsed struct {
	// LocalPrefix is everything in the local part before the final
	// separator, i.e. the original parts rejoined with "-".
	LocalPrefix string
	// Digest is the candidate hex digest, the final "-"-delimited segment
	// of the local part.
	Digest string
	// Domain is everything after the "@".
	Domain string
}

// JoinParts builds the local prefix from alias parts. Parts are joined
// verbatim; callers are responsible for rejecting empty parts.
func JoinParts(parts []string) string {
	return strings.Join(parts, PartSeparator)
}

// CanonicalMessage returns the exact byte sequence fed to the keyed hash
// for a given local prefix. Generation and validation must construct this
// identically or no alias verifies.
func CanonicalMessage(localPrefix string) []byte {
	return []byte(localPrefix)
}

// Assemble builds the final address string from its components.
func Assemble(localPrefix, digest, domain string) string {
	return localPrefix + PartSeparator + digest + "@" + domain
}

// Parse splits a candidate alias into prefix, digest, and domain,
// enforcing the structural rules:
//
//   - exactly one "@", with non-empty text on both sides;
//   - the local part contains at least one "-" with a non-empty prefix
//     before it;
//   - the digest segment is exactly hashLength lowercase-hex characters.
//
// The boolean result is false for any structural violation; Parse never
// inspects the digest's value beyond its alphabet and length.
func Parse(alias string, hashLength int) (Parsed, bool) {
	if strings.Count(alias, "@") != 1 {
		return Parsed{}, false
	}

	at := strings.IndexByte(alias, '@')
	local, domain := alias[:at], alias[at+1:]
	if local == "" || domain == "" {
		return Parsed{}, false
	}

	sep := strings.LastIndex(local, PartSeparator)
	if sep <= 0 {
		// No separator, or an empty prefix before it.
		return Parsed{}, false
	}

	prefix, digest := local[:sep], local[sep+1:]
	if len(digest) != hashLength || !IsLowerHex(digest) {
		return Parsed{}, false
	}

	return Parsed{LocalPrefix: prefix, Digest: digest, Domain: domain}, true
}
