package auth

import (
	"net/http"

	"github.com/BazaarWorks/BW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the auth API. Login is the only throttled route; the
// rest either require a valid session already or create one.
func SetupRoutes(h *Handler, limiter *middleware.LoginLimiter) http.Handler {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.With(limiter.Middleware).Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
	r.Post("/password", h.UpdatePassword)

	return r
}
