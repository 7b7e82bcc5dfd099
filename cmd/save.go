package cmd

import (
	"github.com/theirongolddev/dledger/internal/ledger"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <n> <amount>",
	Short: "Set the amount saved so far for debt number n",
	Args:  cobra.ExactArgs(2),
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, args []string) error {
	n, err := parseRowNumber(args[0])
	if err != nil {
		return err
	}
	return dispatch(ledger.CommitSaved{Index: n - 1, Saved: ledger.ParseAmount(args[1])})
}
