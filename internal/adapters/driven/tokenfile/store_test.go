package tokenfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline-health/eligo/internal/core/domain"
)

func newTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token.json")
	s, err := NewStore(path, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)

	tok := domain.Token{
		Bearer:    "Bearer abc123",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, s.Save(tok))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Bearer abc123", loaded.Bearer)
	assert.True(t, loaded.ExpiresAt.Equal(tok.ExpiresAt))
	assert.True(t, loaded.Valid(now))
}

func TestSaveRecordShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)

	require.NoError(t, s.Save(domain.Token{Bearer: "Bearer abc", ExpiresAt: now.Add(time.Hour)}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var rec map[string]string
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "Bearer abc", rec["oauth_token"])
	assert.Equal(t, "2025-06-01T13:00:00Z", rec["expires_at"])
	assert.Equal(t, "2025-06-01T12:00:00Z", rec["saved_at"])
}

func TestLoadAbsent(t *testing.T) {
	s := newTestStore(t, time.Now())
	tok, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestLoadMalformedRemovesFile(t *testing.T) {
	s := newTestStore(t, time.Now())
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json"), 0o600))

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, tok)

	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadExpiredRemovesFile(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)

	// Inside the five-minute buffer counts as expired.
	require.NoError(t, s.Save(domain.Token{Bearer: "Bearer abc", ExpiresAt: now.Add(3 * time.Minute)}))

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, tok)

	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestClearIdempotent(t *testing.T) {
	now := time.Now()
	s := newTestStore(t, now)

	require.NoError(t, s.Clear()) // nothing there yet

	require.NoError(t, s.Save(domain.Token{Bearer: "Bearer abc", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestFilePermissions(t *testing.T) {
	now := time.Now()
	s := newTestStore(t, now)
	require.NoError(t, s.Save(domain.Token{Bearer: "Bearer abc", ExpiresAt: now.Add(time.Hour)}))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
