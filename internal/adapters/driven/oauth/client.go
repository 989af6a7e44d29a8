// Package oauth implements the client-credentials token exchange against
// the marketplace OAuth endpoint.
package oauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/logger"
)

// defaultExpiresIn is assumed when the token endpoint omits expires_in.
const defaultExpiresIn = 3599

const grantType = "client_credentials"

// Client exchanges client credentials for bearer tokens.
type Client struct {
	tokenURL string
	env      string
	http     *http.Client
	now      func() time.Time
}

var _ driven.TokenExchanger = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a token exchange client for the given endpoint and
// environment label.
func NewClient(tokenURL, env string, opts ...Option) *Client {
	c := &Client{
		tokenURL: tokenURL,
		env:      env,
		http:     &http.Client{Timeout: 30 * time.Second},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   json.Number `json:"expires_in"`
}

// Exchange performs the client-credentials exchange. Every failure mode
// maps to *domain.AuthError; credentials never appear in errors or logs.
func (c *Client) Exchange(ctx context.Context, creds domain.Credentials) (*domain.Token, error) {
	if !creds.Complete() {
		return nil, domain.ErrNotConfigured
	}

	body, err := json.Marshal(tokenRequest{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		GrantType:    grantType,
	})
	if err != nil {
		return nil, fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("env", c.env)

	logger.Debug("requesting OAuth token from %s", c.tokenURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.AuthError{StatusCode: 500, Body: fmt.Sprintf("Request failed: %s", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.AuthError{StatusCode: 500, Body: fmt.Sprintf("Request failed: %s", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.AuthError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, &domain.AuthError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("Malformed token response: %s", err)}
	}
	if tr.AccessToken == "" {
		return nil, &domain.AuthError{StatusCode: resp.StatusCode, Body: "Token response missing access_token"}
	}

	expiresIn := int64(defaultExpiresIn)
	if n, err := tr.ExpiresIn.Int64(); err == nil && n > 0 {
		expiresIn = n
	}

	now := c.now()
	tok := &domain.Token{
		Bearer:    domain.BearerPrefix + tr.AccessToken,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(expiresIn) * time.Second),
	}

	logger.Debug("token obtained, expires at %s", tok.ExpiresAt.Format(time.RFC3339))
	return tok, nil
}
