package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/domain"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the OAuth access token",
}

var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh access token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}

		tok, err := authService.Generate(context.Background())
		if err != nil {
			if errors.Is(err, domain.ErrNotConfigured) {
				return errors.New("credentials not configured: run 'eligo config set-credentials' or set ELIGO_CLIENT_ID / ELIGO_CLIENT_SECRET")
			}
			return fmt.Errorf("token generation failed: %w", err)
		}

		cmd.Println(successStyle.Render("Token generated."))
		printTokenDetails(cmd, tok)
		return nil
	},
}

var tokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current token state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}

		state := authService.State()
		kv(cmd, "State", string(state))

		if tok := authService.Current(); tok != nil {
			printTokenDetails(cmd, tok)
		}
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the current token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}

		if err := authService.Clear(); err != nil {
			return fmt.Errorf("clearing token: %w", err)
		}
		cmd.Println("Token cleared.")
		return nil
	},
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <bearer-value>",
	Short: "Install a manually obtained token",
	Long: `Installs a token obtained outside this tool. The value must include
the "Bearer " prefix. Its real expiry is unknown, so one hour is assumed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if authService == nil {
			return errors.New("auth service not configured")
		}

		tok, err := authService.SetManual(args[0])
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return errors.New(`token must start with "Bearer "`)
			}
			return err
		}

		cmd.Println(successStyle.Render("Token installed."))
		printTokenDetails(cmd, tok)
		return nil
	},
}

func printTokenDetails(cmd *cobra.Command, tok *domain.Token) {
	kv(cmd, "Expires at", tok.ExpiresAt.Local().Format(time.RFC1123))
	ttl := tok.TTL(time.Now())
	if ttl > 0 {
		kv(cmd, "Time remaining", ttl.Round(time.Second).String())
	}
}

func init() {
	tokenCmd.AddCommand(tokenGenerateCmd)
	tokenCmd.AddCommand(tokenStatusCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	tokenCmd.AddCommand(tokenSetCmd)
	rootCmd.AddCommand(tokenCmd)
}
