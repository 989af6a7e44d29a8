package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/core/ports/driving"
	"github.com/clearline-health/eligo/internal/logger"
	"github.com/clearline-health/eligo/internal/normalizer"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService orchestrates the upstream lookups and records them in the
// local history. History failures never fail a lookup.
type LookupService struct {
	gateway driven.EligibilityGateway
	history driven.HistoryStore
}

// NewLookupService creates a lookup service. history may be nil to disable
// recording.
func NewLookupService(gateway driven.EligibilityGateway, history driven.HistoryStore) *LookupService {
	return &LookupService{
		gateway: gateway,
		history: history,
	}
}

// record appends a history entry, degrading to a warning on failure.
func (s *LookupService) record(ctx context.Context, op, memberID, transactionID string, err error) {
	if s.history == nil {
		return
	}

	status := http.StatusOK
	if err != nil {
		status = domain.StatusOf(err)
	}

	rec := domain.LookupRecord{
		ID:            uuid.NewString(),
		Operation:     op,
		MemberID:      memberID,
		TransactionID: transactionID,
		StatusCode:    status,
		OK:            err == nil,
	}
	if recErr := s.history.Record(ctx, rec); recErr != nil {
		logger.Warn("could not record lookup history: %v", recErr)
	}
}

// Search runs an eligibility search and, when the response yields the
// needed identifiers, fetches enhanced coverage detail in the same call.
// A failed or impossible coverage fetch degrades to a warning on the
// result, never an error.
func (s *LookupService) Search(ctx context.Context, q domain.EligibilityQuery) (*domain.SearchResult, error) {
	doc, err := s.gateway.SearchEligibility(ctx, q)
	s.record(ctx, domain.OpEligibilitySearch, q.MemberID, "", err)
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult{
		Raw:         doc,
		Eligibility: normalizer.Eligibility(doc),
		Identifiers: normalizer.Identifiers(doc),
	}

	ids := result.Identifiers
	if ids.PatientKey == "" || ids.TransactionID == "" {
		result.CoverageWarning = "Coverage details unavailable: response did not include a patient key and transaction ID."
		return result, nil
	}

	covQuery := domain.CoverageQuery{
		PatientKey:    ids.PatientKey,
		TransactionID: ids.TransactionID,
		Enhanced:      true,
	}
	covDoc, covErr := s.gateway.GetCopayCoinsurance(ctx, covQuery)
	s.record(ctx, domain.OpCoverageDetail, ids.MemberID, ids.TransactionID, covErr)
	if covErr != nil {
		logger.Warn("coverage fetch failed: %v", covErr)
		result.CoverageWarning = fmt.Sprintf("Coverage details unavailable: %s", covErr)
		return result, nil
	}

	result.CoverageRaw = covDoc
	result.Coverage = normalizer.Coverage(covDoc)
	return result, nil
}

// NetworkStatus checks provider network participation.
func (s *LookupService) NetworkStatus(ctx context.Context, q domain.NetworkStatusQuery) (domain.Document, error) {
	doc, err := s.gateway.CheckNetworkStatus(ctx, q)
	s.record(ctx, domain.OpNetworkStatus, q.MemberID, q.TransactionID, err)
	return doc, err
}

// Coverage fetches copay/coinsurance detail and returns both the raw
// document and its flattened view.
func (s *LookupService) Coverage(ctx context.Context, q domain.CoverageQuery) (domain.Document, *domain.CoverageDetail, error) {
	doc, err := s.gateway.GetCopayCoinsurance(ctx, q)
	s.record(ctx, domain.OpCoverageDetail, "", q.TransactionID, err)
	if err != nil {
		return nil, nil, err
	}
	return doc, normalizer.Coverage(doc), nil
}

// MemberCard fetches the member ID card.
func (s *LookupService) MemberCard(ctx context.Context, req domain.MemberCardRequest) (*domain.CardResult, error) {
	res, err := s.gateway.GetMemberCardImage(ctx, req)
	s.record(ctx, domain.OpMemberCard, req.MemberID, req.TransactionID, err)
	return res, err
}
