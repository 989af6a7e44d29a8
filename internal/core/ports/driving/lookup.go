package driving

import (
	"context"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// LookupService orchestrates the upstream lookups: each call is one
// synchronous sequence of network requests, with dependent calls issued
// only after the eligibility response yields their identifiers.
type LookupService interface {
	// Search runs an eligibility search, normalizes the response, and
	// automatically fetches enhanced coverage detail when the response
	// yields a patient key and transaction ID.
	Search(ctx context.Context, q domain.EligibilityQuery) (*domain.SearchResult, error)

	// NetworkStatus checks provider network participation and returns the
	// raw response document.
	NetworkStatus(ctx context.Context, q domain.NetworkStatusQuery) (domain.Document, error)

	// Coverage fetches copay/coinsurance detail and returns both the raw
	// document and its flattened view.
	Coverage(ctx context.Context, q domain.CoverageQuery) (domain.Document, *domain.CoverageDetail, error)

	// MemberCard fetches the member ID card.
	MemberCard(ctx context.Context, req domain.MemberCardRequest) (*domain.CardResult, error)
}
