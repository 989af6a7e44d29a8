package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local lookup history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent lookups",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if historyStore == nil {
			return errors.New("history is disabled")
		}

		records, err := historyStore.List(context.Background(), historyLimit)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}

		if len(records) == 0 {
			cmd.Println("No lookups recorded.")
			return nil
		}

		cmd.Printf("%-20s %-20s %-14s %-8s %s\n", "Time", "Operation", "Member ID", "Status", "OK")
		for _, rec := range records {
			ok := "yes"
			if !rec.OK {
				ok = "no"
			}
			cmd.Printf("%-20s %-20s %-14s %-8d %s\n",
				rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				rec.Operation, rec.MemberID, rec.StatusCode, ok)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded lookups",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if historyStore == nil {
			return errors.New("history is disabled")
		}

		if err := historyStore.Clear(context.Background()); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
