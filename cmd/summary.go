package cmd

import (
	"fmt"

	"github.com/theirongolddev/dledger/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals, percent saved and daily target",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, s, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := l.View()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderSummary(report.Summary, cfg.General.Currency, 30))

	if report.Summary.OverdueCount > 0 {
		note("\n  %d overdue, see `dledger list --overdue`\n", report.Summary.OverdueCount)
	}
	return nil
}
