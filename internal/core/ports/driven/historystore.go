package driven

import (
	"context"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// HistoryStore records past lookups for the history commands.
// Recording is best-effort: callers treat failures as warnings.
type HistoryStore interface {
	// Record appends one lookup record.
	Record(ctx context.Context, rec domain.LookupRecord) error

	// List returns the most recent records, newest first.
	// A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]domain.LookupRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
