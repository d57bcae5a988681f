// Package emailalias generates and validates deterministic, tamper-evident
// email aliases of the form <parts>-<digest>@<domain>, where <digest> is a
// truncated HMAC-SHA256 over the alias parts under a secret key.
//
// Aliases need no database: any address claiming to be valid is re-derived
// from the secret key and compared on the fly, so a user can mint unlimited
// per-service addresses and still reject forgeries.
//
// Basic usage:
//
//	codec, err := emailalias.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alias, err := codec.Generate(ctx, secretKey, []string{"shop", "amazon"}, "example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// alias: "shop-amazon-1a2b3c4d@example.com"
//
//	ok, err := codec.Validate(ctx, secretKey, alias)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("valid:", ok)
//
// Both operations are pure and stateless; a single Codec is safe for
// concurrent use without coordination. Validation is total over string
// inputs: malformed or non-matching aliases yield false, never an error,
// so untrusted data is always safe to check.
package emailalias
