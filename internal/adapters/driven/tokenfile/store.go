// Package tokenfile persists the OAuth token as a JSON file under the
// user's home directory, surviving process restarts.
package tokenfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/logger"
)

const (
	defaultDirName  = ".eligo"
	defaultFileName = "token.json"

	dirPerm  = 0o700
	filePerm = 0o600
)

// record is the on-disk shape. Timestamps are RFC 3339.
type record struct {
	OAuthToken string `json:"oauth_token"`
	ExpiresAt  string `json:"expires_at"`
	SavedAt    string `json:"saved_at"`
}

// Store is a file-backed TokenStore.
type Store struct {
	path string
	now  func() time.Time
}

var _ driven.TokenStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a token store at the given path, or under
// ~/.eligo/token.json when path is empty.
func NewStore(path string, opts ...Option) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, defaultDirName, defaultFileName)
	}
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Save writes the token record, creating the parent directory as needed.
// Tokens are credentials, so both directory and file are user-only.
func (s *Store) Save(tok domain.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	data, err := json.MarshalIndent(record{
		OAuthToken: tok.Bearer,
		ExpiresAt:  tok.ExpiresAt.Format(time.RFC3339),
		SavedAt:    s.now().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token record: %w", err)
	}

	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Load reads the persisted token. Absent, malformed, and expired records
// all yield (nil, nil); the latter two are also deleted so the next load
// starts clean.
func (s *Store) Load() (*domain.Token, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.OAuthToken == "" {
		logger.Warn("token file at %s is malformed, removing it", s.path)
		_ = os.Remove(s.path)
		return nil, nil
	}

	expiresAt, err := time.Parse(time.RFC3339, rec.ExpiresAt)
	if err != nil {
		logger.Warn("token file at %s has invalid expiry, removing it", s.path)
		_ = os.Remove(s.path)
		return nil, nil
	}

	tok := &domain.Token{Bearer: rec.OAuthToken, ExpiresAt: expiresAt}
	if saved, err := time.Parse(time.RFC3339, rec.SavedAt); err == nil {
		tok.IssuedAt = saved
	}

	if !tok.Valid(s.now()) {
		logger.Debug("persisted token expired, removing %s", s.path)
		_ = os.Remove(s.path)
		return nil, nil
	}
	return tok, nil
}

// Clear deletes the persisted record. Clearing an absent record is fine.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// Path returns the storage location for diagnostics.
func (s *Store) Path() string {
	return s.path
}
