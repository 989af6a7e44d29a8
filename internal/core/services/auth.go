package services

import (
	"context"
	"sync"
	"time"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/core/ports/driving"
	"github.com/clearline-health/eligo/internal/logger"
)

// ManualTokenTTL is the assumed lifetime of a manually pasted token, whose
// real expiry is unknown.
const ManualTokenTTL = time.Hour

// Ensure AuthService implements the interfaces.
var (
	_ driving.AuthService  = (*AuthService)(nil)
	_ driven.TokenProvider = (*AuthService)(nil)
)

// AuthService owns the OAuth token lifecycle: one token at a time, loaded
// from the store at startup, exchanged on demand, re-validated immediately
// before every use.
type AuthService struct {
	mu         sync.Mutex
	exchanger  driven.TokenExchanger
	store      driven.TokenStore
	creds      domain.Credentials
	token      *domain.Token
	generating bool
	now        func() time.Time
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// NewAuthService creates the auth service and loads any persisted token.
// The store hands back nil for absent, malformed, or expired records, so
// whatever loads here is usable.
func NewAuthService(exchanger driven.TokenExchanger, store driven.TokenStore, creds domain.Credentials, opts ...AuthOption) *AuthService {
	s := &AuthService{
		exchanger: exchanger,
		store:     store,
		creds:     creds,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if store != nil {
		tok, err := store.Load()
		if err != nil {
			logger.Warn("could not load persisted token: %v", err)
		} else if tok != nil {
			s.token = tok
			logger.Debug("loaded persisted token, expires at %s", tok.ExpiresAt.Format(time.RFC3339))
		}
	}
	return s
}

// Generate exchanges the configured credentials for a fresh token, persists
// it, and returns a copy. Only one exchange may be in flight at a time.
func (s *AuthService) Generate(ctx context.Context) (*domain.Token, error) {
	if !s.creds.Complete() {
		return nil, domain.ErrNotConfigured
	}

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return nil, domain.ErrGenerating
	}
	s.generating = true
	s.mu.Unlock()

	tok, err := s.exchanger.Exchange(ctx, s.creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false

	if err != nil {
		// Failed generation returns to the absent state, the persisted
		// record included, so a restart cannot resurrect the old token.
		s.token = nil
		if s.store != nil {
			if clearErr := s.store.Clear(); clearErr != nil {
				logger.Warn("could not clear persisted token: %v", clearErr)
			}
		}
		return nil, err
	}

	s.token = tok
	s.persist(*tok)

	copied := *tok
	return &copied, nil
}

// SetManual installs a manually pasted bearer value. The value must carry
// the "Bearer " prefix; the expiry is assumed to be one hour out.
func (s *AuthService) SetManual(bearer string) (*domain.Token, error) {
	if !domain.HasBearerPrefix(bearer) {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	tok := &domain.Token{
		Bearer:    bearer,
		IssuedAt:  now,
		ExpiresAt: now.Add(ManualTokenTTL),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	s.persist(*tok)

	copied := *tok
	return &copied, nil
}

// persist saves the token, degrading to a warning on failure: the
// in-memory token still serves the current session. Caller holds the lock.
func (s *AuthService) persist(tok domain.Token) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(tok); err != nil {
		logger.Warn("could not persist token: %v", err)
	}
}

// Current returns a copy of the held token, or nil when absent.
func (s *AuthService) Current() *domain.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil
	}
	copied := *s.token
	return &copied
}

// State reports the lifecycle state of the held token.
func (s *AuthService) State() domain.TokenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return domain.StateGenerating
	}
	return domain.StateOf(s.token, s.now())
}

// Valid reports whether the held token permits gateway calls.
func (s *AuthService) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token.Valid(s.now())
}

// Clear forgets the held token and deletes the persisted record.
func (s *AuthService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}

// GetToken implements driven.TokenProvider. It re-checks validity at the
// moment of use: a token that was valid when a command started may have
// crossed into the expiry buffer by the time a request goes out.
func (s *AuthService) GetToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil {
		return "", domain.ErrNoToken
	}
	if !s.token.Valid(s.now()) {
		return "", domain.ErrTokenExpired
	}
	return s.token.Bearer, nil
}
