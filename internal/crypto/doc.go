// Package crypto provides the cryptographic primitives behind alias
// generation: HMAC-SHA256 keyed hashing and HKDF-SHA256 key derivation.
//
// # Algorithms
//
//   - HMAC-SHA256 (RFC 2104 / FIPS 198-1): the keyed hash over the
//     canonical alias message. Deterministic, fixed 32-byte output, and
//     unforgeable without the key.
//
//   - HKDF-SHA256 (RFC 5869): derivation of independent per-scope signing
//     keys from a single master secret, with domain separation via
//     [HKDFContext].
//
// # Security Notes
//
// Truncating an HMAC digest weakens collision resistance proportionally to
// the kept length; the default of 8 hex characters (32 bits) is a
// tamper-evidence measure, not a cryptographic authentication tag. Secret
// keys must never be logged or embedded in output except through the hash.
package crypto
