package utils

import (
	"context"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
)

type contextKey string

const ContextPrincipalKey contextKey = "principal"

// WithPrincipal returns a context carrying the resolved principal. Only the
// gate writes this key; handlers read it through GetPrincipalFromContext.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, ContextPrincipalKey, p)
}

func GetPrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(ContextPrincipalKey).(auth.Principal)
	return p, ok
}
