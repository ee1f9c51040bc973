package token

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoIdentity is the single failure mode of Verify. A missing, malformed,
// expired, or foreign-signed credential all collapse into it; callers must
// not distinguish between those cases and must fall back to the
// unauthenticated path.
var ErrNoIdentity = errors.New("no identity")

// Claims is the session credential payload: the subject user id plus the
// registered iat/exp pair. Nothing else is embedded; role and username are
// resolved fresh from the user store on every request.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies session credentials. It is constructed once at
// startup from validated config and is immutable afterwards, so concurrent
// use from request handlers needs no locking.
type Issuer struct {
	secret     []byte
	ttl        time.Duration
	production bool
}

func NewIssuer(cfg Config) (*Issuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Issuer{
		secret:     cfg.Secret,
		ttl:        cfg.TTL,
		production: cfg.Production,
	}, nil
}

// TTL reports the configured credential lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a credential for userID using the configured TTL.
func (i *Issuer) Issue(userID string) (string, error) {
	return i.IssueTTL(userID, i.ttl)
}

// IssueTTL signs a credential for userID that expires after ttl.
func (i *Issuer) IssueTTL(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// IssueSession issues a credential for userID and attaches it to the
// response as the session cookie. The cookie is only set when signing
// succeeded, so a misconfigured issuer can never hand out an empty session.
func (i *Issuer) IssueSession(w http.ResponseWriter, userID string) (string, error) {
	signed, err := i.Issue(userID)
	if err != nil {
		return "", err
	}
	i.attach(w, signed)
	return signed, nil
}

// Verify checks the signature and expiry of a credential string and returns
// its claims. Every failure is ErrNoIdentity.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrNoIdentity
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return nil, ErrNoIdentity
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, ErrNoIdentity
	}
	return claims, nil
}
