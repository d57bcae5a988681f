package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	emailalias "github.com/CutTheCrapTech/email-alias-core"
	"github.com/joho/godotenv"
)

// secretKeyEnv is the environment variable holding the signing key for
// generate and validate. A .env file in the working directory is honored.
const secretKeyEnv = "EMAIL_ALIAS_SECRET_KEY"

const usage = `usage: emailalias <command> [args]

commands:
  generate [-length n] <domain> <part> [part...]   mint an alias
  validate [-length n] <alias>                     check an alias
  keygen                                           generate a fresh secret key
  derive-key <scope>                               derive a scoped key from the secret key

The secret key is read from ` + secretKeyEnv + ` (a .env file is honored).`

// Config holds the process dependencies so tests can run commands
// against buffers.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the real process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	// Missing .env is fine; the variable may be set directly.
	_ = godotenv.Load()

	if len(args) < 2 {
		return fmt.Errorf("%s", usage)
	}

	ctx := context.Background()

	switch args[1] {
	case "generate":
		return generate(ctx, args[2:], cfg)
	case "validate":
		return validate(ctx, args[2:], cfg)
	case "keygen":
		return keygen(cfg)
	case "derive-key":
		return deriveKey(args[2:], cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func generate(ctx context.Context, args []string, cfg Config) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	length := fs.Int("length", emailalias.DefaultHashLength, "digest length in hex characters")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: emailalias generate [-length n] <domain> <part> [part...]")
	}

	key, err := secretKey()
	if err != nil {
		return err
	}

	domain, parts := fs.Arg(0), fs.Args()[1:]
	alias, err := emailalias.Generate(ctx, key, parts, domain, emailalias.WithHashLength(*length))
	if err != nil {
		return fmt.Errorf("generate alias: %w", err)
	}

	return writeJSON(cfg.Stdout, map[string]string{"alias": alias})
}

func validate(ctx context.Context, args []string, cfg Config) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	length := fs.Int("length", emailalias.DefaultHashLength, "digest length in hex characters")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: emailalias validate [-length n] <alias>")
	}

	key, err := secretKey()
	if err != nil {
		return err
	}

	ok, err := emailalias.Validate(ctx, key, fs.Arg(0), emailalias.WithHashLength(*length))
	if err != nil {
		return fmt.Errorf("validate alias: %w", err)
	}

	return writeJSON(cfg.Stdout, map[string]bool{"valid": ok})
}

func keygen(cfg Config) error {
	key, err := emailalias.NewSecretKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	return writeJSON(cfg.Stdout, map[string]string{"secretKey": key})
}

func deriveKey(args []string, cfg Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: emailalias derive-key <scope>")
	}

	master, err := secretKey()
	if err != nil {
		return err
	}

	scoped, err := emailalias.DeriveScopedKey(master, args[0])
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	return writeJSON(cfg.Stdout, map[string]string{"scope": args[0], "secretKey": scoped})
}

func secretKey() (string, error) {
	key := os.Getenv(secretKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s is not set", secretKeyEnv)
	}
	return key, nil
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
