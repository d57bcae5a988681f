package codec

import (
	"strings"
	"testing"
)

func TestTruncatedHex(t *testing.T) {
	mac := []byte{0x8e, 0x5f, 0xc0, 0xa1}

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"one character", 1, "8"},
		{"odd length", 3, "8e5"},
		{"full", 8, "8e5fc0a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TruncatedHex(mac, tt.n)
			if err != nil {
				t.Fatalf("TruncatedHex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TruncatedHex(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestTruncatedHex_Lowercase(t *testing.T) {
	mac := []byte{0xab, 0xcd, 0xef, 0xAB}
	got, err := TruncatedHex(mac, 8)
	if err != nil {
		t.Fatalf("TruncatedHex() error = %v", err)
	}
	if got != strings.ToLower(got) {
		t.Errorf("TruncatedHex() = %q, want lowercase", got)
	}
}

func TestTruncatedHex_TooShort(t *testing.T) {
	if _, err := TruncatedHex([]byte{0x01}, 8); err == nil {
		t.Error("expected error for mac shorter than requested length")
	}
}

func TestDigestsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal", "1a2b3c4d", "1a2b3c4d", true},
		{"different", "1a2b3c4d", "1a2b3c4e", false},
		{"different first byte", "0a2b3c4d", "1a2b3c4d", false},
		{"different lengths", "1a2b3c4d", "1a2b3c", false},
		{"both empty", "", "", true},
		{"case differs", "1a2b3c4d", "1A2B3C4D", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DigestsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("DigestsEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsLowerHex(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"1a2b3c4d", true},
		{"0123456789abcdef", true},
		{"", false},
		{"1A2B", false},
		{"xyz", false},
		{"1a2b3c4g", false},
		{"1a2b 3c4d", false},
	}

	for _, tt := range tests {
		if got := IsLowerHex(tt.s); got != tt.want {
			t.Errorf("IsLowerHex(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
