package driven

import (
	"context"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// EligibilityGateway is the thin client over the four upstream API
// operations. Each call is independent and stateless aside from the token
// it reads; errors are always *domain.APIError (or a token sentinel when no
// usable token is held).
type EligibilityGateway interface {
	// SearchEligibility runs a member eligibility search and returns the
	// raw response document, opaque to the gateway.
	SearchEligibility(ctx context.Context, q domain.EligibilityQuery) (domain.Document, error)

	// CheckNetworkStatus checks a provider's network participation.
	// Array-shaped error bodies are unwrapped to their first element, a
	// documented upstream inconsistency.
	CheckNetworkStatus(ctx context.Context, q domain.NetworkStatusQuery) (domain.Document, error)

	// GetCopayCoinsurance fetches copay/coinsurance detail for a patient
	// key and transaction ID, from the v2.0 or the enhanced v5.0 endpoint.
	GetCopayCoinsurance(ctx context.Context, q domain.CoverageQuery) (domain.Document, error)

	// GetMemberCardImage fetches the member ID card. The response shape is
	// resolved here once: image bytes, a JSON document, or raw bytes typed
	// as application/octet-stream.
	GetMemberCardImage(ctx context.Context, req domain.MemberCardRequest) (*domain.CardResult, error)
}
