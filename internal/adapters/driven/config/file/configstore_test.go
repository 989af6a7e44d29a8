package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("api.env", "production"))

	val, ok := store.Get("api.env")
	assert.True(t, ok)
	assert.Equal(t, "production", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "https://example.com"))
	require.NoError(t, store.Set("history.enabled", true))

	assert.Equal(t, "https://example.com", store.GetString("api.base_url"))
	assert.Equal(t, "", store.GetString("missing"))
	// Wrong type degrades to empty.
	assert.Equal(t, "", store.GetString("history.enabled"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.enabled", false))

	assert.False(t, store.GetBool("history.enabled"))
	assert.False(t, store.GetBool("missing"))

	require.NoError(t, store.Set("history.enabled", true))
	assert.True(t, store.GetBool("history.enabled"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("api.client_id", "id-1"))
	require.NoError(t, store.Set("api.env", "production"))

	// Dot keys survive the round trip through nested TOML tables.
	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "id-1", reopened.GetString("api.client_id"))
	assert.Equal(t, "production", reopened.GetString("api.env"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("api.client_secret", "s3cret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"api": map[string]any{
			"env": "production",
			"urls": map[string]any{
				"base": "https://example.com",
			},
		},
		"top": int64(1),
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, "production", flat["api.env"])
	assert.Equal(t, "https://example.com", flat["api.urls.base"])
	assert.Equal(t, int64(1), flat["top"])
}

func TestExpandMapInvertsFlatten(t *testing.T) {
	flat := map[string]any{
		"api.env":      "production",
		"api.base_url": "https://example.com",
		"top":          true,
	}

	nested := expandMap(flat)
	api, ok := nested["api"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "production", api["env"])
	assert.Equal(t, "https://example.com", api["base_url"])
	assert.Equal(t, true, nested["top"])
}

func TestResolveSettings_Defaults(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	s := ResolveSettings(store)
	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, DefaultOAuthURL, s.OAuthURL)
	assert.Equal(t, "production", s.Env)
	assert.True(t, s.History)
	assert.False(t, s.Credentials.Complete())
}

func TestResolveSettings_EnvOverridesFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyClientID, "file-id"))
	require.NoError(t, store.Set(KeyClientSecret, "file-secret"))

	t.Setenv(EnvClientID, "env-id")
	t.Setenv(EnvClientSecret, "")

	s := ResolveSettings(store)
	assert.Equal(t, "env-id", s.Credentials.ClientID)
	assert.Equal(t, "file-secret", s.Credentials.ClientSecret)
	assert.True(t, s.Credentials.Complete())
}

func TestResolveSettings_HistoryDisabled(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyHistory, false))

	s := ResolveSettings(store)
	assert.False(t, s.History)
}
