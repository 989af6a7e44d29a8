package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clearline-health/eligo/internal/adapters/driven/config/file"
	"github.com/clearline-health/eligo/internal/adapters/driven/oauth"
	"github.com/clearline-health/eligo/internal/adapters/driven/storage/sqlite"
	"github.com/clearline-health/eligo/internal/adapters/driven/tokenfile"
	"github.com/clearline-health/eligo/internal/adapters/driving/cli"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/core/services"
	"github.com/clearline-health/eligo/internal/gateway"
	"github.com/clearline-health/eligo/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eligo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	settings := file.ResolveSettings(configStore)

	tokenStore, err := tokenfile.NewStore(settings.TokenFile)
	if err != nil {
		return fmt.Errorf("opening token store: %w", err)
	}

	oauthClient := oauth.NewClient(settings.OAuthURL, settings.Env)
	authService := services.NewAuthService(oauthClient, tokenStore, settings.Credentials)

	httpClient := gateway.NewHTTPClient(context.Background(), authService)
	apiClient := gateway.NewClient(settings.BaseURL, settings.Credentials.ClientID, settings.Env, httpClient)

	var historyStore driven.HistoryStore
	if settings.History {
		store, err := sqlite.NewStore("")
		if err != nil {
			// History is best-effort; lookups still work without it.
			logger.Warn("history store unavailable: %v", err)
		} else {
			historyStore = store
			defer store.Close()
		}
	}

	lookupService := services.NewLookupService(apiClient, historyStore)

	cli.SetServices(authService, lookupService, configStore, historyStore)
	return cli.Execute()
}
