package domain

// Document is a raw JSON object as returned by the upstream API.
// The gateway treats it as opaque; the normalizer flattens it into the
// typed records below.
type Document = map[string]any

// NotAvailable is the sentinel rendered for fields the upstream omitted.
// Payloads are sparse depending on plan and payer, so every field of every
// record may degrade to this value.
const NotAvailable = "N/A"

// Demographics is the flattened patient identity block of one policy.
type Demographics struct {
	FullName     string
	DateOfBirth  string // US format (MM/DD/YYYY) when parseable
	Gender       string
	Relationship string
	PatientKey   string
	Subscriber   string // "Yes", "No", or N/A
	Address      string // single line, second address component optional
}

// InsuranceInfo is the flattened insurance block of one policy.
type InsuranceInfo struct {
	PayerName       string
	MemberID        string
	GroupNumber     string
	InsuranceType   string
	PlanDescription string
	PayerStatus     string
	LineOfBusiness  string
	PayerID         string
	Platform        string
}

// PolicyInfo is the flattened policy status block.
type PolicyInfo struct {
	PolicyStatus     string
	CoverageType     string
	EligibilityStart string
	EligibilityEnd   string
	PlanStart        string
	PlanEnd          string
}

// MoneyRow is one flat cost-sharing row. The same shape serves the
// deductible, out-of-pocket, and copay-maximum tables.
type MoneyRow struct {
	PolicyLabel string // e.g. "Policy 1"
	Type        string // e.g. "Individual In-Network"
	PlanAmount  string // "$" + amount + frequency
	Remaining   string // "$" + amount
	MetYTD      string // "$" + amount
}

// ReferralInfo is the flattened referral block.
type ReferralInfo struct {
	ReferralRequired string // "Yes", "No", or the raw indicator
	RLinkEBN         string
}

// PCPInfo is the flattened primary care physician block.
// Found mirrors the upstream pcpFound flag; the remaining fields are only
// meaningful when it is true.
type PCPInfo struct {
	Found         bool
	Name          string
	ProviderGroup string
	Address       string
	NetworkStatus string
}

// Policy is the full flattened view of one member policy.
type Policy struct {
	Label         string // "Policy N", 1-based
	TransactionID string
	PatientKey    string

	Demographics Demographics
	Insurance    InsuranceInfo
	Info         PolicyInfo
	Referral     ReferralInfo
	PCP          PCPInfo

	PlanMessage        string
	AdditionalCoverage string

	DeductibleRows    []MoneyRow
	DeductibleMessage string

	OutOfPocketRows    []MoneyRow
	OutOfPocketMessage string

	CopayMaxRows    []MoneyRow
	CopayMaxMessage string

	OutOfPocketMaxMessage string

	CopayCapApplied bool
	CopayCapMessage string
}

// RequestingProvider is the flattened requesting-provider block of an
// eligibility response.
type RequestingProvider struct {
	Name         string
	Organization string
	NPI          string
	TaxID        string
}

// Eligibility is the fully normalized view of an eligibility response.
// Purely derived from the raw document; recomputed on each render.
type Eligibility struct {
	MemberID      string
	SearchStatus  string
	TransactionID string
	Policies      []Policy
	Provider      *RequestingProvider
}

// Identifiers are the correlation fields extracted from the first policy of
// an eligibility response. They key the dependent coverage-detail and
// member-card calls.
type Identifiers struct {
	PatientKey    string
	TransactionID string
	MemberID      string
	PayerID       string
	FirstName     string
	DateOfBirth   string
}

// CardRequest builds a member card request from the extracted identifiers.
func (i Identifiers) CardRequest() MemberCardRequest {
	return MemberCardRequest{
		TransactionID: i.TransactionID,
		MemberID:      i.MemberID,
		DateOfBirth:   i.DateOfBirth,
		PayerID:       i.PayerID,
		FirstName:     i.FirstName,
	}
}

// ServiceLine is one flattened coverage row for a network tier.
type ServiceLine struct {
	Service     string
	Status      string
	Copay       string // "$" + amount + frequency
	Coinsurance string // percent + "%"
	Deductible  string // deductible messages joined by "; ", or N/A
}

// Limitation is one benefit limitation record for drill-down display.
type Limitation struct {
	Period              string
	Type                string
	OccurrencePerPeriod string
	DollarPerPeriod     string
	Messages            []string
}

// ServiceBenefits collects the benefits-allowed messages and limitations
// for one service.
type ServiceBenefits struct {
	Service     string
	Messages    []string
	Limitations []Limitation
}

// VendorService is one vendor coverage entry.
type VendorService struct {
	Text       string
	VendorName string
	URL        string
}

// CoverageDetail is the normalized view of a copay/coinsurance response.
type CoverageDetail struct {
	InNetwork    []ServiceLine
	OutOfNetwork []ServiceLine
	Benefits     []ServiceBenefits
	Vendors      []VendorService
}

// SearchResult bundles an eligibility search with the dependent coverage
// lookup that follows it.
type SearchResult struct {
	Raw         Document
	Eligibility Eligibility
	Identifiers Identifiers

	// Coverage detail is fetched automatically when the identifiers allow
	// it. A failed or skipped fetch degrades to a warning, never an error.
	Coverage        *CoverageDetail
	CoverageRaw     Document
	CoverageWarning string
}
