package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/dledger/internal/ledger"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <n>",
	Aliases: []string{"delete"},
	Short:   "Delete debt number n as listed",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	n, err := parseRowNumber(args[0])
	if err != nil {
		return err
	}
	return dispatch(ledger.DeleteDebt{Index: n - 1})
}

// parseRowNumber parses a 1-based row number as shown by list.
func parseRowNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid row number %q", s)
	}
	return n, nil
}
