package cmd

import (
	"github.com/theirongolddev/dledger/internal/ledger"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <description> <amount> <due-date>",
	Short:   "Add a debt (due date as YYYY-MM-DD)",
	Example: `  dledger add Rent 1200 2025-12-01`,
	Args:    cobra.ExactArgs(3),
	RunE:    runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	return dispatch(ledger.AddDebt{
		Description: args[0],
		Amount:      ledger.ParseAmount(args[1]),
		DueDate:     args[2],
	})
}
