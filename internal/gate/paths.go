package gate

import (
	"strings"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
)

// apiPrefix marks routes that perform their own authorization; the gate
// never touches them.
const apiPrefix = "/api/"

// protectedPrefixes and protectedSubstrings together define every page area
// that requires an authenticated principal.
var protectedPrefixes = []string{"/admin", "/seller"}

var protectedSubstrings = []string{
	"/admin/",
	"/seller/",
	"/dashboard",
	"/profile",
	"/orders",
	"/addresses",
	"/subscriptions",
	"/payment-methods",
	"/wallet",
	"/notifications",
	"/support",
	"/settings",
}

// classification is the result of matching a request path against the
// protected-area patterns. It is computed per request and never stored.
type classification struct {
	Protected bool
	Admin     bool   // admin-only section
	Seller    bool   // seller section (admin also passes)
	Username  string // owner segment of a per-user page, "" when absent
}

func classify(path string) classification {
	if path == "/api" || strings.HasPrefix(path, apiPrefix) {
		return classification{}
	}

	var class classification
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			class.Protected = true
		}
	}
	for _, sub := range protectedSubstrings {
		if strings.Contains(path, sub) {
			class.Protected = true
		}
	}
	if !class.Protected {
		return class
	}

	class.Admin = strings.HasPrefix(path, "/admin") || strings.Contains(path, "/admin/")
	class.Seller = strings.HasPrefix(path, "/seller") || strings.Contains(path, "/seller/")

	// Per-user pages have the shape /{username}/...: the owner is the
	// first segment unless it names a fixed section.
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) >= 2 && segments[0] != "" && !auth.ReservedUsername(segments[0]) {
		class.Username = segments[0]
	}
	return class
}
