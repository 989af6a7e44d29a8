package normalizer

import "github.com/clearline-health/eligo/internal/core/domain"

// moneyScopes orders the four possible rows of a cost-sharing section.
var moneyScopes = []struct {
	scopeKey   string
	scopeLabel string
}{
	{"individual", "Individual"},
	{"family", "Family"},
}

var moneyTiers = []struct {
	tierKey   string
	tierLabel string
}{
	{"inNetwork", "In-Network"},
	{"outOfNetwork", "Out-of-Network"},
}

// MoneyRows flattens one cost-sharing section shaped as
// {individual:{inNetwork,outOfNetwork}, family:{inNetwork,outOfNetwork}}
// into zero to four display rows, one per leaf with found=true. The same
// routine serves the deductible, out-of-pocket, and copay-maximum sections.
// Amounts render as currency strings with a literal "$" prefix and a zero
// default.
func MoneyRows(section map[string]any, policyLabel string) []domain.MoneyRow {
	if !found(section) {
		return nil
	}

	var rows []domain.MoneyRow
	for _, scope := range moneyScopes {
		sc := obj(section, scope.scopeKey)
		if !found(sc) {
			continue
		}
		for _, tier := range moneyTiers {
			leaf := obj(sc, tier.tierKey)
			if !found(leaf) {
				continue
			}
			rows = append(rows, domain.MoneyRow{
				PolicyLabel: policyLabel,
				Type:        scope.scopeLabel + " " + tier.tierLabel,
				PlanAmount:  "$" + str(leaf, "planAmount", "0") + str(leaf, "planAmountFrequency", ""),
				Remaining:   "$" + str(leaf, "remainingAmount", "0"),
				MetYTD:      "$" + str(leaf, "metYtdAmount", "0"),
			})
		}
	}
	return rows
}

// sectionMessage returns the section-level message, empty when absent.
// Sections can carry a message even when found=false.
func sectionMessage(section map[string]any) string {
	return str(section, "message", "")
}
