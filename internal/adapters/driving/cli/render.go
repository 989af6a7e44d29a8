package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// printJSON renders a value as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printAPIError renders a failed lookup with its status and body detail.
func printAPIError(cmd *cobra.Command, err error) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		cmd.PrintErrln(errorStyle.Render(fmt.Sprintf("Request failed (%d): %s", apiErr.StatusCode, apiErr.Message())))
		if len(apiErr.Body) > 1 {
			if data, jsonErr := json.MarshalIndent(apiErr.Body, "", "  "); jsonErr == nil {
				cmd.PrintErrln(mutedStyle.Render(string(data)))
			}
		}
		return
	}
	cmd.PrintErrln(errorStyle.Render(err.Error()))
}

// kv prints one aligned key/value line.
func kv(cmd *cobra.Command, key, value string) {
	cmd.Printf("  %-22s %s\n", key+":", value)
}

func renderEligibility(cmd *cobra.Command, e domain.Eligibility) {
	cmd.Println(titleStyle.Render("Eligibility"))
	kv(cmd, "Member ID", e.MemberID)
	kv(cmd, "Search status", e.SearchStatus)
	kv(cmd, "Transaction ID", e.TransactionID)

	if e.Provider != nil {
		cmd.Println()
		cmd.Println(sectionStyle.Render("Requesting Provider"))
		kv(cmd, "Name", e.Provider.Name)
		kv(cmd, "Organization", e.Provider.Organization)
		kv(cmd, "NPI", e.Provider.NPI)
		kv(cmd, "Tax ID", e.Provider.TaxID)
	}

	if len(e.Policies) == 0 {
		cmd.Println()
		cmd.Println(warnStyle.Render("No member policies found."))
		return
	}

	for i := range e.Policies {
		renderPolicy(cmd, &e.Policies[i])
	}
}

func renderPolicy(cmd *cobra.Command, p *domain.Policy) {
	cmd.Println()
	cmd.Println(sectionStyle.Render(p.Label))

	kv(cmd, "Name", p.Demographics.FullName)
	kv(cmd, "Date of birth", p.Demographics.DateOfBirth)
	kv(cmd, "Gender", p.Demographics.Gender)
	kv(cmd, "Relationship", p.Demographics.Relationship)
	kv(cmd, "Subscriber", p.Demographics.Subscriber)
	kv(cmd, "Address", p.Demographics.Address)

	cmd.Println()
	kv(cmd, "Payer", p.Insurance.PayerName)
	kv(cmd, "Member ID", p.Insurance.MemberID)
	kv(cmd, "Group number", p.Insurance.GroupNumber)
	kv(cmd, "Plan", p.Insurance.PlanDescription)
	kv(cmd, "Insurance type", p.Insurance.InsuranceType)
	kv(cmd, "Line of business", p.Insurance.LineOfBusiness)
	kv(cmd, "Payer ID", p.Insurance.PayerID)

	cmd.Println()
	kv(cmd, "Policy status", p.Info.PolicyStatus)
	kv(cmd, "Coverage type", p.Info.CoverageType)
	kv(cmd, "Eligibility period", p.Info.EligibilityStart+" to "+p.Info.EligibilityEnd)
	kv(cmd, "Plan period", p.Info.PlanStart+" to "+p.Info.PlanEnd)
	kv(cmd, "Referral required", p.Referral.ReferralRequired)

	if p.PCP.Found {
		cmd.Println()
		cmd.Println(sectionStyle.Render("Primary Care Physician"))
		kv(cmd, "Name", p.PCP.Name)
		kv(cmd, "Provider group", p.PCP.ProviderGroup)
		kv(cmd, "Address", p.PCP.Address)
		kv(cmd, "Network status", p.PCP.NetworkStatus)
	}

	renderMoneySection(cmd, "Deductibles", p.DeductibleRows, p.DeductibleMessage)
	renderMoneySection(cmd, "Out-of-Pocket", p.OutOfPocketRows, p.OutOfPocketMessage)
	renderMoneySection(cmd, "Copay Maximum", p.CopayMaxRows, p.CopayMaxMessage)

	if p.OutOfPocketMaxMessage != "" {
		cmd.Println()
		cmd.Println(mutedStyle.Render("  " + p.OutOfPocketMaxMessage))
	}

	if p.AdditionalCoverage != "" {
		cmd.Println()
		kv(cmd, "Additional coverage", p.AdditionalCoverage)
	}
	if p.CopayCapApplied || p.CopayCapMessage != "" {
		cmd.Println()
		kv(cmd, "Copay cap applied", yesNo(p.CopayCapApplied))
		if p.CopayCapMessage != "" {
			kv(cmd, "Copay cap note", p.CopayCapMessage)
		}
	}
	if p.PlanMessage != "" {
		cmd.Println()
		cmd.Println(mutedStyle.Render("  " + p.PlanMessage))
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func renderMoneySection(cmd *cobra.Command, name string, rows []domain.MoneyRow, message string) {
	if len(rows) == 0 && message == "" {
		return
	}
	cmd.Println()
	cmd.Println(sectionStyle.Render(name))
	if len(rows) > 0 {
		cmd.Printf("  %-26s %-14s %-12s %s\n", "Type", "Plan Amount", "Remaining", "Met YTD")
		for _, r := range rows {
			cmd.Printf("  %-26s %-14s %-12s %s\n", r.Type, r.PlanAmount, r.Remaining, r.MetYTD)
		}
	}
	if message != "" {
		cmd.Println(mutedStyle.Render("  " + message))
	}
}

func renderCoverage(cmd *cobra.Command, c *domain.CoverageDetail) {
	cmd.Println()
	cmd.Println(titleStyle.Render("Copay and Coinsurance"))

	renderServiceLines(cmd, "In-Network Services", c.InNetwork)
	renderServiceLines(cmd, "Out-of-Network Services", c.OutOfNetwork)

	for _, b := range c.Benefits {
		cmd.Println()
		cmd.Println(sectionStyle.Render("Benefits for " + b.Service))
		for _, msg := range b.Messages {
			cmd.Println("  - " + msg)
		}
		for _, lim := range b.Limitations {
			if lim.OccurrencePerPeriod != "" && lim.OccurrencePerPeriod != domain.NotAvailable {
				cmd.Printf("  - %s: %s per %s\n", lim.Type, lim.OccurrencePerPeriod, lim.Period)
			}
			if lim.DollarPerPeriod != "" && lim.DollarPerPeriod != domain.NotAvailable {
				cmd.Printf("  - Dollar limit: $%s per %s\n", lim.DollarPerPeriod, lim.Period)
			}
			for _, msg := range lim.Messages {
				cmd.Println("  - " + msg)
			}
		}
	}

	if len(c.Vendors) > 0 {
		cmd.Println()
		cmd.Println(sectionStyle.Render("Vendor Coverage"))
		for _, v := range c.Vendors {
			cmd.Printf("  %s (%s) %s\n", v.Text, v.VendorName, mutedStyle.Render(v.URL))
		}
	}
}

func renderServiceLines(cmd *cobra.Command, name string, lines []domain.ServiceLine) {
	if len(lines) == 0 {
		return
	}
	cmd.Println()
	cmd.Println(sectionStyle.Render(name))
	cmd.Printf("  %-34s %-10s %-14s %-12s %s\n", "Service", "Status", "Copay", "Coins.", "Deductible")
	for _, l := range lines {
		cmd.Printf("  %-34s %-10s %-14s %-12s %s\n",
			truncate(l.Service, 34), l.Status, l.Copay, l.Coinsurance, l.Deductible)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-3])) + "..."
}
