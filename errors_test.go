package emailalias

import (
	"context"
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrEmptyAliasParts", ErrEmptyAliasParts},
		{"ErrEmptyAliasPart", ErrEmptyAliasPart},
		{"ErrEmptyDomain", ErrEmptyDomain},
		{"ErrHashLengthOutOfRange", ErrHashLengthOutOfRange},
		{"ErrPrimitiveUnavailable", ErrPrimitiveUnavailable},
		{"ErrEmptyScope", ErrEmptyScope},
		{"ErrEmptyMasterKey", ErrEmptyMasterKey},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestWrappedErrorsMatchSentinels(t *testing.T) {
	ctx := context.Background()

	_, err := New(WithHashLength(99))
	if !errors.Is(err, ErrHashLengthOutOfRange) {
		t.Errorf("New(WithHashLength(99)) error = %v, want ErrHashLengthOutOfRange", err)
	}

	c, err := New(WithProvider(&failingProvider{err: errors.New("boom")}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = c.Generate(ctx, "k", []string{"shop"}, "example.com")
	if !errors.Is(err, ErrPrimitiveUnavailable) {
		t.Errorf("Generate() error = %v, want wrapped ErrPrimitiveUnavailable", err)
	}
}
