// Package session persists the backend-issued bearer token in a
// cookie. The token is opaque to this layer except for its expiry
// claim, which bounds the cookie lifetime; the token is never verified
// here because only the backend holds the signing key.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the token travels in.
const CookieName = "codex_token"

// DefaultTTL bounds the cookie lifetime when the token carries no
// usable expiry claim.
const DefaultTTL = 24 * time.Hour

// Store reads and writes the session cookie.
type Store struct {
	secure bool
	now    func() time.Time
}

// NewStore creates a store. secure controls the cookie's Secure flag
// and should follow the deployment environment.
func NewStore(secure bool) *Store {
	return &Store{secure: secure, now: time.Now}
}

// Write sets the session cookie. The cookie expires when the token
// does, or after DefaultTTL when the token's expiry cannot be read.
func (s *Store) Write(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl(token).Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the token from the request's session cookie, or the
// empty string when no session exists.
func (s *Store) Token(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Clear expires the session cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) ttl(token string) time.Duration {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return DefaultTTL
	}
	if claims.ExpiresAt == nil {
		return DefaultTTL
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
