package domain

import "fmt"

// DefaultSearchOption is the only search option the upstream API documents
// for member lookups.
const DefaultSearchOption = "memberIDDateOfBirth"

// EligibilityQuery describes one member eligibility search.
// Constructed per search and never mutated. Optional fields are sent to the
// upstream API as empty strings rather than omitted, which is what it
// expects; ServiceStart and ServiceEnd are the exception and are only sent
// when set.
type EligibilityQuery struct {
	MemberID         string
	DateOfBirth      string // ISO-8601 (YYYY-MM-DD)
	SearchOption     string
	PayerID          string
	ProviderLastName string
	TaxIDNumber      string
	FirstName        string
	LastName         string
	ServiceStart     string
	ServiceEnd       string
}

// Validate checks the required fields.
func (q EligibilityQuery) Validate() error {
	if q.MemberID == "" {
		return fmt.Errorf("%w: member ID is required", ErrInvalidInput)
	}
	if q.DateOfBirth == "" {
		return fmt.Errorf("%w: date of birth is required", ErrInvalidInput)
	}
	return nil
}

// NetworkStatusQuery describes one provider network status check.
type NetworkStatusQuery struct {
	MemberID           string
	DateOfBirth        string
	ProviderLastName   string
	FirstDateOfService string
	LastDateOfService  string

	// Optional correlation and provider identifiers.
	TransactionID     string
	ProviderFirstName string
	ProviderTIN       string
	ProviderNPI       string
	FirstName         string
}

// Validate checks the required fields.
func (q NetworkStatusQuery) Validate() error {
	switch {
	case q.MemberID == "":
		return fmt.Errorf("%w: member ID is required", ErrInvalidInput)
	case q.DateOfBirth == "":
		return fmt.Errorf("%w: date of birth is required", ErrInvalidInput)
	case q.ProviderLastName == "":
		return fmt.Errorf("%w: provider last name is required", ErrInvalidInput)
	case q.FirstDateOfService == "" || q.LastDateOfService == "":
		return fmt.Errorf("%w: service date range is required", ErrInvalidInput)
	}
	return nil
}

// CoverageQuery keys a copay/coinsurance detail lookup to an earlier
// eligibility response. Enhanced selects the v5.0 endpoint.
type CoverageQuery struct {
	PatientKey    string
	TransactionID string
	Enhanced      bool
}

// Validate checks the required fields.
func (q CoverageQuery) Validate() error {
	if q.PatientKey == "" || q.TransactionID == "" {
		return fmt.Errorf("%w: patient key and transaction ID are required", ErrInvalidInput)
	}
	return nil
}

// MemberCardRequest keys a member ID card image fetch to an earlier
// eligibility response. All five fields are required upstream.
type MemberCardRequest struct {
	TransactionID string
	MemberID      string
	DateOfBirth   string
	PayerID       string
	FirstName     string
}

// MissingFields names the required fields that are empty, in a stable
// order, for user-facing diagnostics.
func (r MemberCardRequest) MissingFields() []string {
	var missing []string
	if r.TransactionID == "" {
		missing = append(missing, "transaction_id")
	}
	if r.MemberID == "" {
		missing = append(missing, "member_id")
	}
	if r.PayerID == "" {
		missing = append(missing, "payer_id")
	}
	if r.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if r.DateOfBirth == "" {
		missing = append(missing, "date_of_birth")
	}
	return missing
}

// Validate checks that every required field is present.
func (r MemberCardRequest) Validate() error {
	if missing := r.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %v", ErrInvalidInput, missing)
	}
	return nil
}
