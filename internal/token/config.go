package token

import (
	"errors"
	"os"
	"strings"
	"time"
)

// DefaultTTL is the session lifetime when SESSION_TTL is not set.
const DefaultTTL = 7 * 24 * time.Hour

// devSecret is the development fallback for SESSION_SECRET. Validate rejects
// it outside development, so a deploy that forgets the env var fails at
// startup instead of signing production sessions with a public string.
const devSecret = "dev-secret-change-me"

// Config holds the signing configuration for session credentials.
type Config struct {
	// Secret is the HS256 signing key, shared by issue and verify.
	Secret []byte

	// TTL is how long an issued credential stays valid.
	TTL time.Duration

	// Production controls the Secure cookie flag and forbids the dev secret.
	Production bool
}

// ConfigFromEnv loads signing configuration from environment variables.
//
// Environment variables:
//   - SESSION_SECRET: HS256 signing key (default: a dev-only placeholder)
//   - SESSION_TTL: Go duration, e.g. "168h" (default: 7 days)
//   - APP_ENV: "production" enables production mode
func ConfigFromEnv() Config {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = devSecret
	}

	ttl := DefaultTTL
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return Config{
		Secret:     []byte(secret),
		TTL:        ttl,
		Production: strings.EqualFold(os.Getenv("APP_ENV"), "production"),
	}
}

// Validate checks that the configuration can safely sign credentials.
func (c Config) Validate() error {
	if len(c.Secret) == 0 {
		return errors.New("session secret is empty")
	}
	if c.Production && string(c.Secret) == devSecret {
		return errors.New("SESSION_SECRET must be overridden in production")
	}
	if c.TTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	return nil
}
