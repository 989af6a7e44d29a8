// Package cli implements the eligo command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/core/ports/driving"
	"github.com/clearline-health/eligo/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by main before Execute.
var (
	authService   driving.AuthService
	lookupService driving.LookupService
	configStore   driven.ConfigStore
	historyStore  driven.HistoryStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "eligo",
	Short: "Check member eligibility, network status, and coverage",
	Long: `eligo looks up member eligibility, provider network status,
copay/coinsurance detail, and member ID cards against the payer API.

Credentials are read from the config file (eligo config set-credentials)
or the ELIGO_CLIENT_ID / ELIGO_CLIENT_SECRET environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetServices wires the services the commands drive. Called by main after
// construction; kept separate so tests can install fakes.
func SetServices(auth driving.AuthService, lookup driving.LookupService, config driven.ConfigStore, history driven.HistoryStore) {
	authService = auth
	lookupService = lookup
	configStore = config
	historyStore = history
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
