package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/domain"
)

var (
	coveragePatientKey    string
	coverageTransactionID string
	coverageStandard      bool
	coverageJSON          bool
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Fetch copay and coinsurance detail",
	Long: `Fetches copay/coinsurance detail for a patient key and transaction ID
obtained from an earlier eligibility search. Uses the enhanced endpoint
unless --standard is given.`,
	RunE: runCoverage,
}

func init() {
	coverageCmd.Flags().StringVar(&coveragePatientKey, "patient-key", "", "patient key from an eligibility search (required)")
	coverageCmd.Flags().StringVar(&coverageTransactionID, "transaction-id", "", "transaction ID from an eligibility search (required)")
	coverageCmd.Flags().BoolVar(&coverageStandard, "standard", false, "use the standard endpoint instead of the enhanced one")
	coverageCmd.Flags().BoolVar(&coverageJSON, "json", false, "output the raw response as JSON")
	_ = coverageCmd.MarkFlagRequired("patient-key")
	_ = coverageCmd.MarkFlagRequired("transaction-id")
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	q := domain.CoverageQuery{
		PatientKey:    coveragePatientKey,
		TransactionID: coverageTransactionID,
		Enhanced:      !coverageStandard,
	}

	doc, detail, err := lookupService.Coverage(context.Background(), q)
	if err != nil {
		printAPIError(cmd, err)
		return fmt.Errorf("coverage lookup failed")
	}

	if coverageJSON {
		return printJSON(cmd, doc)
	}

	renderCoverage(cmd, detail)
	return nil
}
