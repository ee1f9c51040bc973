package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/BazaarWorks/BW-Backend/internal/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Handler carries the injected dependencies for the auth API. All routes
// live under /api/auth, which the route gate exempts; each handler does its
// own credential check where one is needed.
type Handler struct {
	Store  UserStore
	Issuer *token.Issuer
}

func NewHandler(store UserStore, issuer *token.Issuer) *Handler {
	return &Handler{Store: store, Issuer: issuer}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var user User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	if user.Username == "" || user.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user.Username = NormalizeUsername(user.Username)
	if ReservedUsername(user.Username) {
		http.Error(w, "Username is reserved", http.StatusBadRequest)
		return
	}

	// Email is optional. Store the absence as NULL, never as "", so the
	// unique index cannot collide on two email-less accounts.
	if user.Email != nil && strings.TrimSpace(*user.Email) == "" {
		user.Email = nil
	}

	// Self-service registration never grants admin.
	switch user.Role {
	case RoleSeller, RoleBuyer:
	default:
		user.Role = RoleBuyer
	}

	// Check if username is taken
	if _, err := h.Store.FindByUsername(user.Username); err == nil {
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	} else if !errors.Is(err, ErrNotFound) {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}
	user.HashedPassword = string(hashed)
	user.UserID = uuid.NewString()
	user.Password = ""

	if err := h.Store.Create(&user); err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	// A fresh account is logged in immediately.
	if _, err := h.Issuer.IssueSession(w, user.UserID); err != nil {
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid Data", http.StatusBadRequest)
		return
	}

	user, err := h.Store.FindByUsername(creds.Username)
	if err != nil {
		http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
		return
	}

	// Passwords matched; a brand-new credential replaces whatever the
	// browser held before.
	if _, err := h.Issuer.IssueSession(w, user.UserID); err != nil {
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	principal, err := ResolvePrincipal(h.Store, user.UserID)
	if err != nil {
		http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(principal)
}

// Logout clears the session cookie. It succeeds whether or not the request
// carried one, so repeated logouts are harmless.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Issuer.Terminate(w)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Logout successful\n"))
}

// Me returns the server-verified principal for the current session. The
// storefront uses this as its only source for who-am-I state; nothing
// client-side is trusted for authorization.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Issuer.Verify(token.FromRequest(r))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	principal, err := ResolvePrincipal(h.Store, claims.UserID)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(principal)
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	claims, err := h.Issuer.Verify(token.FromRequest(r))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Store.FindByID(claims.UserID)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CurrentPassword == "" || body.NewPassword == "" {
		http.Error(w, "Current and new password are required", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(body.CurrentPassword)); err != nil {
		http.Error(w, "Invalid current password", http.StatusUnauthorized)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	if err := h.Store.UpdatePassword(user.UserID, string(hashed)); err != nil {
		http.Error(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Password updated\n"))
}
