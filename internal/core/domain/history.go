package domain

import "time"

// Lookup operations recorded in history.
const (
	OpEligibilitySearch = "eligibility_search"
	OpNetworkStatus     = "network_status"
	OpCoverageDetail    = "coverage_detail"
	OpMemberCard        = "member_card"
)

// LookupRecord is one entry in the local lookup history. Bodies are never
// stored, only correlation identifiers and the outcome.
type LookupRecord struct {
	ID            string
	Operation     string
	MemberID      string
	TransactionID string
	StatusCode    int
	OK            bool
	CreatedAt     time.Time
}
