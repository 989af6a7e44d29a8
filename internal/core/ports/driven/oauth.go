package driven

import (
	"context"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// TokenExchanger performs the OAuth2 client-credentials exchange.
// Failures are returned as *domain.AuthError; nothing is raised past this
// boundary.
type TokenExchanger interface {
	// Exchange trades the credentials for a bearer token with a computed
	// expiry.
	Exchange(ctx context.Context, creds domain.Credentials) (*domain.Token, error)
}
