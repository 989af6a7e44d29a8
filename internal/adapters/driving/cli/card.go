package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/domain"
)

var (
	cardTransactionID string
	cardMemberID      string
	cardDOB           string
	cardPayerID       string
	cardFirstName     string
	cardOutput        string
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Fetch the member ID card image",
	Long: `Fetches the member ID card using identifiers from an earlier
eligibility search. Image responses are written to disk; structured
responses are printed as JSON.`,
	RunE: runCard,
}

func init() {
	cardCmd.Flags().StringVar(&cardTransactionID, "transaction-id", "", "transaction ID from an eligibility search (required)")
	cardCmd.Flags().StringVar(&cardMemberID, "member-id", "", "member ID (required)")
	cardCmd.Flags().StringVar(&cardDOB, "dob", "", "date of birth, MM/DD/YYYY (required)")
	cardCmd.Flags().StringVar(&cardPayerID, "payer-id", "", "payer ID from an eligibility search (required)")
	cardCmd.Flags().StringVar(&cardFirstName, "first-name", "", "member first name (required)")
	cardCmd.Flags().StringVarP(&cardOutput, "output", "o", "", "output file (extension added from the image format)")
	rootCmd.AddCommand(cardCmd)
}

func runCard(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	dob, err := toISODate(cardDOB)
	if err != nil {
		return err
	}

	req := domain.MemberCardRequest{
		TransactionID: cardTransactionID,
		MemberID:      cardMemberID,
		DateOfBirth:   dob,
		PayerID:       cardPayerID,
		FirstName:     cardFirstName,
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}

	res, err := lookupService.MemberCard(context.Background(), req)
	if err != nil {
		printAPIError(cmd, err)
		return fmt.Errorf("member card fetch failed")
	}

	if !res.IsImage() {
		cmd.Println(warnStyle.Render("The card endpoint returned structured data instead of an image:"))
		return printJSON(cmd, res.Data)
	}

	path := cardOutput
	if path == "" {
		path = "member-card"
	}
	if ext := res.ImageExtension(); !strings.HasSuffix(path, ext) {
		path += ext
	}

	if err := os.WriteFile(path, res.Image, 0o644); err != nil {
		return fmt.Errorf("writing card image: %w", err)
	}

	cmd.Println(successStyle.Render(fmt.Sprintf("Card image saved to %s (%d bytes, %s)", path, len(res.Image), res.ContentType)))
	return nil
}
