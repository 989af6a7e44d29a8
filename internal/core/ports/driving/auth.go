package driving

import (
	"context"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// AuthService owns the OAuth token lifecycle. It replaces the ambient
// session state of a per-tab UI with one explicit object the command layer
// threads through every gateway call.
type AuthService interface {
	// Generate exchanges the configured credentials for a fresh token,
	// persists it, and returns it.
	Generate(ctx context.Context) (*domain.Token, error)

	// SetManual installs a pasted bearer value with a one-hour expiry.
	// The value must carry the "Bearer " prefix.
	SetManual(bearer string) (*domain.Token, error)

	// Current returns a copy of the held token, or nil when absent.
	Current() *domain.Token

	// State reports the lifecycle state of the held token.
	State() domain.TokenState

	// Valid reports whether the held token permits gateway calls.
	Valid() bool

	// Clear forgets the held token and deletes the persisted record.
	Clear() error
}
