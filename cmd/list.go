package cmd

import (
	"fmt"

	"github.com/theirongolddev/dledger/internal/cli"
	"github.com/theirongolddev/dledger/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagOverdueOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all debts with per-day targets",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagOverdueOnly, "overdue", false, "Only show overdue debts")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	l, s, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := l.View()
	if err != nil {
		return err
	}

	if !flagOverdueOnly {
		printReport(report, cfg, l.Counter())
		return nil
	}

	report.Rows = pipeline.FilterOverdue(report.Rows)
	fmt.Println()
	fmt.Println(cli.RenderTitle("OVERDUE DEBTS"))
	fmt.Println()
	if len(report.Rows) == 0 {
		fmt.Println("  Nothing overdue.")
		return nil
	}
	fmt.Print(cli.RenderTable(cli.DebtTable(report, cfg.General.Currency, cfg.General.DateFormat)))
	return nil
}
