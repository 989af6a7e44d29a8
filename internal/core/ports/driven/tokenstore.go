package driven

import "github.com/clearline-health/eligo/internal/core/domain"

// TokenStore persists a single OAuth token across process restarts.
// The store exclusively owns the persisted record; callers borrow loaded
// tokens read-only. Persistence failure is non-fatal by contract: callers
// log a warning and keep the in-memory token for the current session.
type TokenStore interface {
	// Save writes the token and its expiry to durable storage.
	Save(tok domain.Token) error

	// Load reads the persisted token. It returns (nil, nil) when no record
	// exists, when the content is malformed, or when the token is inside
	// the expiry buffer — in which case the stale record is also deleted.
	// Malformed storage never surfaces as an error.
	Load() (*domain.Token, error)

	// Clear deletes the persisted record. Idempotent: clearing an absent
	// record is not an error.
	Clear() error

	// Path returns the storage location for diagnostics.
	Path() string
}
