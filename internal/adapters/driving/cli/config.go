package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/clearline-health/eligo/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}

		settings := file.ResolveSettings(configStore)

		cmd.Println(titleStyle.Render("Configuration"))
		kv(cmd, "Config file", configStore.Path())
		kv(cmd, "Base URL", settings.BaseURL)
		kv(cmd, "OAuth URL", settings.OAuthURL)
		kv(cmd, "Environment", settings.Env)
		kv(cmd, "History enabled", yesNo(settings.History))
		kv(cmd, "Client ID", maskSecret(settings.Credentials.ClientID))
		kv(cmd, "Client secret", maskSecret(settings.Credentials.ClientSecret))
		if !settings.Credentials.Complete() {
			cmd.Println()
			cmd.Println(warnStyle.Render("Credentials incomplete: run 'eligo config set-credentials'."))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Sets one configuration value by dot key, e.g.

  eligo config set api.env production
  eligo config set history.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}

		key, raw := args[0], args[1]

		var value any = raw
		switch strings.ToLower(raw) {
		case "true":
			value = true
		case "false":
			value = false
		}

		if err := configStore.Set(key, value); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		cmd.Printf("Set %s.\n", key)
		return nil
	},
}

var configSetCredentialsCmd = &cobra.Command{
	Use:   "set-credentials",
	Short: "Store API credentials",
	Long: `Prompts for the client ID and secret and stores them in the config
file. The secret is read without echo when run in a terminal.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}

		cmd.Print("Client ID: ")
		reader := bufio.NewReader(os.Stdin)
		clientID, _ := reader.ReadString('\n')
		clientID = strings.TrimSpace(clientID)
		if clientID == "" {
			return errors.New("client ID must not be empty")
		}

		cmd.Print("Client secret: ")
		secret := readSecret()
		cmd.Println()
		if secret == "" {
			return errors.New("client secret must not be empty")
		}

		if err := configStore.Set(file.KeyClientID, clientID); err != nil {
			return fmt.Errorf("saving credentials: %w", err)
		}
		if err := configStore.Set(file.KeyClientSecret, secret); err != nil {
			return fmt.Errorf("saving credentials: %w", err)
		}

		cmd.Println(successStyle.Render("Credentials saved."))
		return nil
	},
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo when attached to a terminal.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetCredentialsCmd)
	rootCmd.AddCommand(configCmd)
}
