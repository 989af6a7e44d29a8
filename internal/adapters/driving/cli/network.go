package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/domain"
)

var (
	networkMemberID          string
	networkDOB               string
	networkProviderLastName  string
	networkFirstDateService  string
	networkLastDateService   string
	networkTransactionID     string
	networkProviderFirstName string
	networkProviderTIN       string
	networkProviderNPI       string
	networkFirstName         string
	networkJSON              bool
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Check provider network status",
	RunE:  runNetwork,
}

func init() {
	networkCmd.Flags().StringVar(&networkMemberID, "member-id", "", "member ID (required)")
	networkCmd.Flags().StringVar(&networkDOB, "dob", "", "date of birth, MM/DD/YYYY (required)")
	networkCmd.Flags().StringVar(&networkProviderLastName, "provider-last-name", "", "provider last name (required)")
	networkCmd.Flags().StringVar(&networkFirstDateService, "service-start", "", "first date of service, MM/DD/YYYY (required)")
	networkCmd.Flags().StringVar(&networkLastDateService, "service-end", "", "last date of service, MM/DD/YYYY (required)")
	networkCmd.Flags().StringVar(&networkTransactionID, "transaction-id", "", "transaction ID from an earlier search")
	networkCmd.Flags().StringVar(&networkProviderFirstName, "provider-first-name", "", "provider first name")
	networkCmd.Flags().StringVar(&networkProviderTIN, "provider-tin", "", "provider tax identification number")
	networkCmd.Flags().StringVar(&networkProviderNPI, "provider-npi", "", "provider NPI")
	networkCmd.Flags().StringVar(&networkFirstName, "first-name", "", "member first name")
	networkCmd.Flags().BoolVar(&networkJSON, "json", false, "output the raw response as JSON")
	_ = networkCmd.MarkFlagRequired("member-id")
	_ = networkCmd.MarkFlagRequired("dob")
	_ = networkCmd.MarkFlagRequired("provider-last-name")
	_ = networkCmd.MarkFlagRequired("service-start")
	_ = networkCmd.MarkFlagRequired("service-end")
	rootCmd.AddCommand(networkCmd)
}

func runNetwork(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	dob, err := toISODate(networkDOB)
	if err != nil {
		return err
	}
	first, err := toISODate(networkFirstDateService)
	if err != nil {
		return err
	}
	last, err := toISODate(networkLastDateService)
	if err != nil {
		return err
	}

	q := domain.NetworkStatusQuery{
		MemberID:           networkMemberID,
		DateOfBirth:        dob,
		ProviderLastName:   networkProviderLastName,
		FirstDateOfService: first,
		LastDateOfService:  last,
		TransactionID:      networkTransactionID,
		ProviderFirstName:  networkProviderFirstName,
		ProviderTIN:        networkProviderTIN,
		ProviderNPI:        networkProviderNPI,
		FirstName:          networkFirstName,
	}

	doc, err := lookupService.NetworkStatus(context.Background(), q)
	if err != nil {
		printAPIError(cmd, err)
		return fmt.Errorf("network status check failed")
	}

	if networkJSON {
		return printJSON(cmd, doc)
	}

	cmd.Println(titleStyle.Render("Network Status"))
	renderNetworkDoc(cmd, doc)
	return nil
}

// renderNetworkDoc flattens the handful of fields the network status
// response reliably carries, falling back to JSON for the rest.
func renderNetworkDoc(cmd *cobra.Command, doc domain.Document) {
	shown := false
	if v := firstString(doc, "networkStatusCode", "networkStatus"); v != "" {
		kv(cmd, "Network status", v)
		shown = true
	}
	for _, field := range []struct{ key, label string }{
		{"providerName", "Provider"},
		{"transactionId", "Transaction ID"},
	} {
		if v, ok := doc[field.key].(string); ok && v != "" {
			kv(cmd, field.label, v)
			shown = true
		}
	}
	if !shown {
		_ = printJSON(cmd, doc)
	}
}

// firstString returns the first non-empty string value among keys.
func firstString(doc domain.Document, keys ...string) string {
	for _, key := range keys {
		if v, ok := doc[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
