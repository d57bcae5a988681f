// Package codec implements the alias grammar: canonical message
// construction, digest truncation, and the parse routine that mirrors it.
//
// An alias has the exact shape
//
//	<part1>-<part2>-...-<partN>-<digest>@<domain>
//
// where <digest> is a truncated lowercase-hex encoding of a keyed hash over
// the canonical message. The canonical message is the local prefix (the
// parts joined with "-") and nothing else; the secret key and the domain
// participate only through the keyed hash and the address assembly.
//
// Because "-" is both the part separator and an allowed character inside
// parts, the prefix cannot be split back into its original parts without
// ambiguity. Recomputation therefore always works on the full prefix
// string, never on resplit parts, which keeps validation unambiguous.
package codec
