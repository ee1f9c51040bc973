package gate

import (
	"net/http"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
	"github.com/BazaarWorks/BW-Backend/internal/token"
	"github.com/BazaarWorks/BW-Backend/internal/utils"
)

const (
	// LoginPath is where requests with no usable credential are sent.
	LoginPath = "/login"
	// HomePath is where authenticated-but-unauthorized requests are sent.
	// Never the login page: the user has already passed it.
	HomePath = "/"
)

// Middleware intercepts every inbound request and decides whether it may
// proceed. Unprotected paths (including everything under /api/) pass through
// untouched. For protected paths the chain is: verify the session cookie,
// resolve the principal, then apply role and ownership rules. Any failure
// before the role checks redirects to login; failures after them redirect
// home. The gate fails closed: a store error during resolution is treated
// like an invalid credential, never as permission.
func Middleware(issuer *token.Issuer, store auth.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class := classify(r.URL.Path)
			if !class.Protected {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := issuer.Verify(token.FromRequest(r))
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			principal, err := auth.ResolvePrincipal(store, claims.UserID)
			if err != nil {
				// Covers both a deleted user and an unreachable store.
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			if class.Admin && principal.Role != auth.RoleAdmin {
				http.Redirect(w, r, HomePath, http.StatusFound)
				return
			}

			if class.Seller && principal.Role != auth.RoleSeller && principal.Role != auth.RoleAdmin {
				http.Redirect(w, r, HomePath, http.StatusFound)
				return
			}

			// Admin reaches any per-user page; everyone else only their own.
			if class.Username != "" && principal.Role != auth.RoleAdmin {
				if auth.NormalizeUsername(class.Username) != auth.NormalizeUsername(principal.Username) {
					http.Redirect(w, r, HomePath, http.StatusFound)
					return
				}
			}

			ctx := utils.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
