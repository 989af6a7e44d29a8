package domain

import (
	"strings"
	"time"
)

// BearerPrefix is the scheme prefix carried by every stored token.
const BearerPrefix = "Bearer "

// ExpiryBuffer is the safety margin applied ahead of a token's expiry.
// A token is treated as unusable once it is within this window, guarding
// against clock skew and in-flight request latency. Any operation about to
// use a token must re-check validity immediately beforehand.
const ExpiryBuffer = 5 * time.Minute

// Credentials holds the OAuth client-credentials pair.
// Read-only after startup and never logged.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Complete returns true if both halves of the credential pair are set.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Token is an OAuth bearer token together with its lifetime.
// Bearer carries the full header value, including the "Bearer " prefix.
type Token struct {
	Bearer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Valid reports whether the token is usable at the given instant.
// The boundary is exclusive on the invalid side: a token exactly
// ExpiryBuffer away from expiry is already invalid.
func (t *Token) Valid(now time.Time) bool {
	if t == nil || t.Bearer == "" || t.ExpiresAt.IsZero() {
		return false
	}
	return now.Add(ExpiryBuffer).Before(t.ExpiresAt)
}

// TTL returns the remaining lifetime of the token, which may be negative.
func (t *Token) TTL(now time.Time) time.Duration {
	if t == nil {
		return 0
	}
	return t.ExpiresAt.Sub(now)
}

// AccessToken returns the bearer value without the scheme prefix.
func (t *Token) AccessToken() string {
	if t == nil {
		return ""
	}
	return strings.TrimPrefix(t.Bearer, BearerPrefix)
}

// HasBearerPrefix reports whether s looks like a full Authorization value.
// Used to validate manually pasted tokens.
func HasBearerPrefix(s string) bool {
	return strings.HasPrefix(s, BearerPrefix)
}
