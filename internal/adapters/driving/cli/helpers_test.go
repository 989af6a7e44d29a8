package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// fakeAuth is a canned driving.AuthService.
type fakeAuth struct {
	token       *domain.Token
	generateErr error
	state       domain.TokenState
	cleared     bool
}

func (f *fakeAuth) Generate(ctx context.Context) (*domain.Token, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.token, nil
}

func (f *fakeAuth) SetManual(bearer string) (*domain.Token, error) {
	if !domain.HasBearerPrefix(bearer) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	f.token = &domain.Token{Bearer: bearer, IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	return f.token, nil
}

func (f *fakeAuth) Current() *domain.Token   { return f.token }
func (f *fakeAuth) State() domain.TokenState { return f.state }
func (f *fakeAuth) Valid() bool              { return f.token.Valid(time.Now()) }

func (f *fakeAuth) Clear() error {
	f.cleared = true
	f.token = nil
	return nil
}

// fakeLookup is a canned driving.LookupService.
type fakeLookup struct {
	searchResult *domain.SearchResult
	searchErr    error
	networkDoc   domain.Document
	networkErr   error
	coverageDoc  domain.Document
	coverage     *domain.CoverageDetail
	coverageErr  error
	cardRes      *domain.CardResult
	cardErr      error

	lastQuery domain.EligibilityQuery
}

func (f *fakeLookup) Search(ctx context.Context, q domain.EligibilityQuery) (*domain.SearchResult, error) {
	f.lastQuery = q
	return f.searchResult, f.searchErr
}

func (f *fakeLookup) NetworkStatus(ctx context.Context, q domain.NetworkStatusQuery) (domain.Document, error) {
	return f.networkDoc, f.networkErr
}

func (f *fakeLookup) Coverage(ctx context.Context, q domain.CoverageQuery) (domain.Document, *domain.CoverageDetail, error) {
	return f.coverageDoc, f.coverage, f.coverageErr
}

func (f *fakeLookup) MemberCard(ctx context.Context, req domain.MemberCardRequest) (*domain.CardResult, error) {
	return f.cardRes, f.cardErr
}

// setupTestServices installs fakes and returns them with a cleanup func.
func setupTestServices() (*fakeAuth, *fakeLookup, func()) {
	auth := &fakeAuth{state: domain.StateAbsent}
	lookup := &fakeLookup{}
	SetServices(auth, lookup, nil, nil)
	return auth, lookup, func() {
		SetServices(nil, nil, nil, nil)
	}
}

// execute runs the root command with args and captures its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
