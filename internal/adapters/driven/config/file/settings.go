package file

import (
	"os"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
)

// Config keys.
const (
	KeyBaseURL      = "api.base_url"
	KeyOAuthURL     = "api.oauth_url"
	KeyClientID     = "api.client_id"
	KeyClientSecret = "api.client_secret"
	KeyEnv          = "api.env"
	KeyTokenFile    = "token.file"
	KeyHistory      = "history.enabled"
)

// Environment variables overriding the stored credentials.
const (
	EnvClientID     = "ELIGO_CLIENT_ID"
	EnvClientSecret = "ELIGO_CLIENT_SECRET"
)

// Production marketplace defaults, used when the config file does not
// override them.
const (
	DefaultBaseURL  = "https://apimarketplace.uhc.com/Eligibility"
	DefaultOAuthURL = "https://apimarketplace.uhc.com/v1/oauthtoken"
	DefaultEnv      = "production"
)

// Settings are the resolved values the API clients consume.
type Settings struct {
	BaseURL     string
	OAuthURL    string
	Env         string
	Credentials domain.Credentials
	TokenFile   string
	History     bool
}

// ResolveSettings merges stored configuration with environment overrides
// and production defaults. Environment credentials win over the file.
func ResolveSettings(store driven.ConfigStore) Settings {
	s := Settings{
		BaseURL:   store.GetString(KeyBaseURL),
		OAuthURL:  store.GetString(KeyOAuthURL),
		Env:       store.GetString(KeyEnv),
		TokenFile: store.GetString(KeyTokenFile),
		History:   true,
		Credentials: domain.Credentials{
			ClientID:     store.GetString(KeyClientID),
			ClientSecret: store.GetString(KeyClientSecret),
		},
	}

	if v, ok := store.Get(KeyHistory); ok {
		b, _ := v.(bool)
		s.History = b
	}

	if id := os.Getenv(EnvClientID); id != "" {
		s.Credentials.ClientID = id
	}
	if secret := os.Getenv(EnvClientSecret); secret != "" {
		s.Credentials.ClientSecret = secret
	}

	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.OAuthURL == "" {
		s.OAuthURL = DefaultOAuthURL
	}
	if s.Env == "" {
		s.Env = DefaultEnv
	}

	return s
}
