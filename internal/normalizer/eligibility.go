package normalizer

import (
	"fmt"
	"strings"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// Eligibility flattens a full eligibility response. A document with zero
// memberPolicies yields an Eligibility with no policies, never an error.
func Eligibility(doc domain.Document) domain.Eligibility {
	e := domain.Eligibility{
		MemberID:      str(doc, "memberId", na),
		SearchStatus:  str(doc, "searchStatus", na),
		TransactionID: str(doc, "transactionId", na),
		Provider:      requestingProvider(doc),
	}
	for i, raw := range arr(doc, "memberPolicies") {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		e.Policies = append(e.Policies, policy(p, i))
	}
	return e
}

// policy flattens one member policy. idx is zero-based; labels are 1-based.
func policy(p map[string]any, idx int) domain.Policy {
	label := fmt.Sprintf("Policy %d", idx+1)

	out := domain.Policy{
		Label:         label,
		TransactionID: str(p, "transactionId", ""),
		Demographics:  Demographics(p),
		Insurance:     insuranceInfo(p),
		Info:          policyInfo(p),
		Referral:      referralInfo(p),
		PCP:           pcpInfo(p),
		PlanMessage:   str(p, "planMessage", ""),
	}

	if pi := objAt(arr(p, "patientInfo"), 0); pi != nil {
		out.PatientKey = str(pi, "patientKey", "")
	}

	// Additional coverage is only surfaced when it is something other than
	// the literal "None".
	if ac := objAt(arr(p, "additionalCoverageInfo"), 0); ac != nil {
		if v := str(ac, "additionalCoverage", ""); v != "" && v != "None" {
			out.AdditionalCoverage = v
		}
	}

	ded := obj(p, "deductibleInfo")
	out.DeductibleRows = MoneyRows(ded, label)
	out.DeductibleMessage = sectionMessage(ded)

	oop := obj(p, "outOfPocketInfo")
	out.OutOfPocketRows = MoneyRows(oop, label)
	out.OutOfPocketMessage = sectionMessage(oop)

	cmax := obj(p, "copayMaxInfo")
	out.CopayMaxRows = MoneyRows(cmax, label)
	out.CopayMaxMessage = sectionMessage(cmax)

	// outOfPocketMaxInfo carries only a message, no row structure.
	out.OutOfPocketMaxMessage = sectionMessage(obj(p, "outOfPocketMaxInfo"))

	out.CopayCapApplied = truthy(p["copayCapIndicator"])
	out.CopayCapMessage = str(p, "copayCapMessage", "")

	return out
}

// Demographics flattens the first patientInfo entry of a policy.
func Demographics(p map[string]any) domain.Demographics {
	pi := objAt(arr(p, "patientInfo"), 0)

	var subscriber string
	switch {
	case pi == nil:
		subscriber = na
	default:
		if _, ok := pi["subscriberBoolean"]; !ok {
			subscriber = na
		} else if truthy(pi["subscriberBoolean"]) {
			subscriber = "Yes"
		} else {
			subscriber = "No"
		}
	}

	return domain.Demographics{
		FullName:     joinName(str(pi, "firstName", na), str(pi, "middleName", ""), str(pi, "lastName", na)),
		DateOfBirth:  FormatDateToUS(str(pi, "dateOfBirth", na)),
		Gender:       str(pi, "gender", na),
		Relationship: str(pi, "relationship", na),
		PatientKey:   str(pi, "patientKey", na),
		Subscriber:   subscriber,
		Address:      address(pi, na),
	}
}

// joinName concatenates name parts with single spaces, collapsing empty
// middle names and trimming the result.
func joinName(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// address composes a single-line address from up to five components. The
// second address line is included only when present. def is the per-field
// default ("N/A" for patients, "" for PCP blocks, matching upstream usage).
func address(m map[string]any, def string) string {
	line := str(m, "addressLine1", def)
	if a2 := str(m, "addressLine2", ""); a2 != "" {
		line += ", " + a2
	}
	line += fmt.Sprintf(", %s, %s %s",
		str(m, "city", def), str(m, "state", def), str(m, "zip", def))
	return line
}

func insuranceInfo(p map[string]any) domain.InsuranceInfo {
	ins := obj(p, "insuranceInfo")
	return domain.InsuranceInfo{
		PayerName:       str(ins, "payerName", na),
		MemberID:        str(ins, "memberId", na),
		GroupNumber:     str(ins, "groupNumber", na),
		InsuranceType:   str(ins, "insuranceType", na),
		PlanDescription: str(ins, "planDescription", na),
		PayerStatus:     str(ins, "payerStatus", na),
		LineOfBusiness:  str(ins, "lineOfBusiness", na),
		PayerID:         str(ins, "payerId", na),
		Platform:        str(ins, "platform", na),
	}
}

func policyInfo(p map[string]any) domain.PolicyInfo {
	pol := obj(p, "policyInfo")
	elig := obj(pol, "eligibilityDates")
	plan := obj(pol, "planDates")
	return domain.PolicyInfo{
		PolicyStatus:     str(pol, "policyStatus", na),
		CoverageType:     str(pol, "coverageType", na),
		EligibilityStart: FormatDateToUS(str(elig, "startDate", na)),
		EligibilityEnd:   FormatDateToUS(str(elig, "endDate", na)),
		PlanStart:        FormatDateToUS(str(plan, "startDate", na)),
		PlanEnd:          FormatDateToUS(str(plan, "endDate", na)),
	}
}

func referralInfo(p map[string]any) domain.ReferralInfo {
	ref := obj(p, "referralInfo")

	indicator := str(ref, "referralIndicator", na)
	switch indicator {
	case "Y":
		indicator = "Yes"
	case "N":
		indicator = "No"
	}

	ebn := na
	if ref != nil {
		switch v := ref["rLinkEBN"].(type) {
		case bool:
			if v {
				ebn = "Yes"
			} else {
				ebn = "No"
			}
		case string:
			ebn = v
		}
	}

	return domain.ReferralInfo{ReferralRequired: indicator, RLinkEBN: ebn}
}

// pcpInfo flattens the primary care physician block. The upstream flags
// presence with the string "true", not a boolean.
func pcpInfo(p map[string]any) domain.PCPInfo {
	pcp := obj(p, "primaryCarePhysicianInfo")
	if str(pcp, "pcpFound", "") != "true" {
		return domain.PCPInfo{}
	}
	return domain.PCPInfo{
		Found:         true,
		Name:          joinName(str(pcp, "firstName", ""), str(pcp, "middleName", ""), str(pcp, "lastName", "")),
		ProviderGroup: str(pcp, "providerGroupName", na),
		Address:       address(pcp, ""),
		NetworkStatus: str(pcp, "networkStatusCode", na),
	}
}

// requestingProvider flattens the requesting-provider block, or nil when
// absent. The provider name falls back to the organization name.
func requestingProvider(doc domain.Document) *domain.RequestingProvider {
	rp := obj(doc, "requestingProvider")
	if rp == nil {
		return nil
	}
	name := joinName(
		str(rp, "providerFirstName", ""),
		str(rp, "providerMiddleName", ""),
		str(rp, "providerLastName", ""))
	if name == "" {
		name = str(rp, "organizationName", na)
	}
	return &domain.RequestingProvider{
		Name:         name,
		Organization: str(rp, "organizationName", na),
		NPI:          str(rp, "npi", na),
		TaxID:        str(rp, "taxIdNumber", na),
	}
}

// Identifiers extracts the correlation fields from the first policy of an
// eligibility response. They key the dependent coverage-detail and
// member-card calls. Missing fields stay empty.
func Identifiers(doc domain.Document) domain.Identifiers {
	first := objAt(arr(doc, "memberPolicies"), 0)
	if first == nil {
		return domain.Identifiers{}
	}
	pi := objAt(arr(first, "patientInfo"), 0)
	ins := obj(first, "insuranceInfo")
	return domain.Identifiers{
		PatientKey:    str(pi, "patientKey", ""),
		TransactionID: str(first, "transactionId", ""),
		MemberID:      str(ins, "memberId", ""),
		PayerID:       str(ins, "payerId", ""),
		FirstName:     str(pi, "firstName", ""),
		DateOfBirth:   str(pi, "dateOfBirth", ""),
	}
}
