package gateway

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/logger"
)

// tokenSource adapts driven.TokenProvider to oauth2.TokenSource, so the
// standard oauth2 transport injects the Authorization header. The provider
// is consulted on every request; validity is re-checked at the moment of
// use, never cached here.
type tokenSource struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &tokenSource{provider: provider, ctx: ctx}
}

// Token implements oauth2.TokenSource.
func (t *tokenSource) Token() (*oauth2.Token, error) {
	bearer, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug("Authorization: %s...", redact(bearer))

	return &oauth2.Token{
		AccessToken: strings.TrimPrefix(bearer, domain.BearerPrefix),
		TokenType:   "Bearer",
	}, nil
}

// redact truncates an Authorization value for debug output.
func redact(bearer string) string {
	if len(bearer) <= 20 {
		return bearer
	}
	return bearer[:20]
}

// NewHTTPClient builds the HTTP client the gateway uses: the oauth2
// transport over the token source, with the per-call timeout applied.
// The transport is used directly rather than through oauth2.NewClient,
// whose ReuseTokenSource wrapper would cache the first token for the life
// of the process and skip the per-request validity check.
func NewHTTPClient(ctx context.Context, provider driven.TokenProvider) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{Source: NewTokenSource(ctx, provider)},
		Timeout:   DefaultTimeout,
	}
}
