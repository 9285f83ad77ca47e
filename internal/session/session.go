// Package session holds the client's bearer token and inspects its claims.
// The token is opaque to the client for authentication purposes; claims are
// parsed without verification purely to warn about expiry before burning a
// network call and to label the signed-in user.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the active sign-in state.
type Session struct {
	token  string
	claims jwt.MapClaims
}

// FromToken parses a bearer token into a Session. The signature is not
// verified; only the backend can do that.
func FromToken(token string) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return &Session{token: token, claims: claims}, nil
}

// Token returns the raw bearer token for the Authorization header.
func (s *Session) Token() string {
	return s.token
}

// Email returns the signed-in email claim, if present.
func (s *Session) Email() string {
	if email, ok := s.claims["email"].(string); ok {
		return email
	}
	return ""
}

// ExpiresAt returns the token expiry, if the claim is present.
func (s *Session) ExpiresAt() (time.Time, bool) {
	exp, err := s.claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token has expired as of now. Tokens without an
// expiry claim are treated as live; the backend has the final say either way.
func (s *Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	if !ok {
		return false
	}
	return now.After(exp)
}
