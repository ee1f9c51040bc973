package token

import "net/http"

// CookieName is the one name used by issuance, verification, and
// termination. Keeping all three call sites on this constant is what rules
// out the set-one-name-read-another class of bug.
const CookieName = "session"

// attach writes the session cookie carrying a signed credential.
func (i *Issuer) attach(w http.ResponseWriter, signed string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(i.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   i.production,
	})
}

// Terminate deletes the session cookie. Terminating a request that carries
// no session is a no-op, so logout handlers can call it unconditionally.
func (i *Issuer) Terminate(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   i.production,
	})
}

// FromRequest extracts the raw credential from the request's session
// cookie. An absent cookie yields the empty string, which Verify maps to
// ErrNoIdentity.
func FromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
