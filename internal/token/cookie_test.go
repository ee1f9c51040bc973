package token_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BazaarWorks/BW-Backend/internal/token"
)

// TestIssueSession_SetsCookie verifies that IssueSession attaches the signed
// credential as an http-only, SameSite=Lax session cookie whose max-age
// matches the configured TTL.
func TestIssueSession_SetsCookie(t *testing.T) {
	issuer := newIssuer(t, "test-secret", time.Hour)

	rec := httptest.NewRecorder()
	signed, err := issuer.IssueSession(rec, "user-123")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != token.CookieName {
		t.Errorf("expected cookie %q, got %q", token.CookieName, c.Name)
	}
	if c.Value != signed {
		t.Error("cookie value does not match the issued credential")
	}
	if !c.HttpOnly {
		t.Error("session cookie must be http-only")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", c.SameSite)
	}
	if c.Path != "/" {
		t.Errorf("expected Path=/, got %q", c.Path)
	}
	if c.MaxAge != int(issuer.TTL().Seconds()) {
		t.Errorf("expected MaxAge=%d, got %d", int(issuer.TTL().Seconds()), c.MaxAge)
	}
	if c.Secure {
		t.Error("Secure flag should be off outside production")
	}
}

// TestTerminate_Idempotent verifies that terminating a session twice leaves
// the same observable state as terminating it once: a cleared, expired
// session cookie.
func TestTerminate_Idempotent(t *testing.T) {
	issuer := newIssuer(t, "test-secret", time.Hour)

	once := httptest.NewRecorder()
	issuer.Terminate(once)

	twice := httptest.NewRecorder()
	issuer.Terminate(twice)
	issuer.Terminate(twice)

	last := func(rec *httptest.ResponseRecorder) *http.Cookie {
		cookies := rec.Result().Cookies()
		if len(cookies) == 0 {
			t.Fatal("expected at least one Set-Cookie")
		}
		return cookies[len(cookies)-1]
	}

	a, b := last(once), last(twice)
	if a.Value != "" || b.Value != "" {
		t.Error("terminated session cookie must be empty")
	}
	if a.MaxAge != -1 || b.MaxAge != -1 {
		t.Errorf("terminated cookie must expire immediately, got %d and %d", a.MaxAge, b.MaxAge)
	}
	if a.Name != b.Name || a.Path != b.Path {
		t.Error("repeated terminate changed the cookie shape")
	}
}

// TestFromRequest_NoCookie verifies that a request without the session
// cookie yields an empty credential string.
func TestFromRequest_NoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := token.FromRequest(req); got != "" {
		t.Errorf("expected empty credential, got %q", got)
	}
}
