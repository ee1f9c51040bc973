package auth_test

import (
	"testing"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
)

// TestNormalizeUsername verifies that case, surrounding whitespace, and
// Unicode compatibility variants all collapse to one canonical form.
func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"Alice", "alice"},
		{"  alice  ", "alice"},
		{"ａｌｉｃｅ", "alice"},           // fullwidth compatibility characters
		{"cafe\u0301", "café"},         // combining accent composes under NFKC
		{"BobsWoodshop", "bobswoodshop"},
	}

	for _, tt := range tests {
		if got := auth.NormalizeUsername(tt.in); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestReservedUsername verifies that section names are rejected in any
// representation a registrant might try.
func TestReservedUsername(t *testing.T) {
	for _, name := range []string{"admin", "Admin", "SELLER", " settings ", "ａｄｍｉｎ"} {
		if !auth.ReservedUsername(name) {
			t.Errorf("expected %q to be reserved", name)
		}
	}
	for _, name := range []string{"alice", "bob", "adminx", "sellers"} {
		if auth.ReservedUsername(name) {
			t.Errorf("did not expect %q to be reserved", name)
		}
	}
}
