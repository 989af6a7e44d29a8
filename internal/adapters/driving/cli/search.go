package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/domain"
)

var (
	searchMemberID         string
	searchDOB              string
	searchFirstName        string
	searchLastName         string
	searchPayerID          string
	searchProviderLastName string
	searchTaxID            string
	searchServiceStart     string
	searchServiceEnd       string
	searchJSON             bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search member eligibility",
	Long: `Searches member eligibility by member ID and date of birth, then
automatically fetches copay/coinsurance detail when the response yields
the identifiers it needs.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchMemberID, "member-id", "", "member ID (required)")
	searchCmd.Flags().StringVar(&searchDOB, "dob", "", "date of birth, MM/DD/YYYY (required)")
	searchCmd.Flags().StringVar(&searchFirstName, "first-name", "", "member first name")
	searchCmd.Flags().StringVar(&searchLastName, "last-name", "", "member last name")
	searchCmd.Flags().StringVar(&searchPayerID, "payer-id", "", "payer ID")
	searchCmd.Flags().StringVar(&searchProviderLastName, "provider-last-name", "", "provider last name")
	searchCmd.Flags().StringVar(&searchTaxID, "tax-id", "", "provider tax ID number")
	searchCmd.Flags().StringVar(&searchServiceStart, "service-start", "", "service start date, MM/DD/YYYY")
	searchCmd.Flags().StringVar(&searchServiceEnd, "service-end", "", "service end date, MM/DD/YYYY")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the raw response as JSON")
	_ = searchCmd.MarkFlagRequired("member-id")
	_ = searchCmd.MarkFlagRequired("dob")
	rootCmd.AddCommand(searchCmd)
}

// toISODate converts user-entered MM/DD/YYYY to the YYYY-MM-DD the API
// expects. Already-ISO input passes through.
func toISODate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), nil
	}
	t, err := time.Parse("01/02/2006", s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: use MM/DD/YYYY", s)
	}
	return t.Format("2006-01-02"), nil
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	dob, err := toISODate(searchDOB)
	if err != nil {
		return err
	}
	serviceStart, err := toISODate(searchServiceStart)
	if err != nil {
		return err
	}
	serviceEnd, err := toISODate(searchServiceEnd)
	if err != nil {
		return err
	}

	q := domain.EligibilityQuery{
		MemberID:         searchMemberID,
		DateOfBirth:      dob,
		SearchOption:     domain.DefaultSearchOption,
		PayerID:          searchPayerID,
		ProviderLastName: searchProviderLastName,
		TaxIDNumber:      searchTaxID,
		FirstName:        searchFirstName,
		LastName:         searchLastName,
		ServiceStart:     serviceStart,
		ServiceEnd:       serviceEnd,
	}

	result, err := lookupService.Search(context.Background(), q)
	if err != nil {
		printAPIError(cmd, err)
		return fmt.Errorf("eligibility search failed")
	}

	if searchJSON {
		out := map[string]any{"eligibility": result.Raw}
		if result.CoverageRaw != nil {
			out["coverage"] = result.CoverageRaw
		}
		return printJSON(cmd, out)
	}

	renderEligibility(cmd, result.Eligibility)

	if result.Coverage != nil {
		renderCoverage(cmd, result.Coverage)
	}
	if result.CoverageWarning != "" {
		cmd.Println()
		cmd.Println(warnStyle.Render(result.CoverageWarning))
	}

	if ids := result.Identifiers; ids.TransactionID != "" {
		cmd.Println()
		cmd.Println(mutedStyle.Render(fmt.Sprintf(
			"Use 'eligo card --transaction-id %s --member-id %s ...' to fetch the member ID card.",
			ids.TransactionID, ids.MemberID)))
	}
	return nil
}
