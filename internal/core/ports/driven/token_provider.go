package driven

import "context"

// TokenProvider provides the bearer value for authenticated API calls.
// The gateway calls it immediately before every request so validity is
// re-checked at the moment of use, never cached past the expiry buffer.
type TokenProvider interface {
	// GetToken returns the full Authorization value ("Bearer ..." form).
	// It fails with domain.ErrNoToken or domain.ErrTokenExpired when no
	// usable token is held.
	GetToken(ctx context.Context) (string, error)
}
