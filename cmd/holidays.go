package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/cli"

	"github.com/spf13/cobra"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Show the day-count policy, rest days and holidays",
	Args:  cobra.NoArgs,
	RunE:  runHolidays,
}

func init() {
	rootCmd.AddCommand(holidaysCmd)
}

func runHolidays(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	counter, err := cfg.Counter()
	if err != nil {
		return fmt.Errorf("building day counter: %w", err)
	}
	h, err := calendar.NewHolidays(cfg.Calendar.Holidays)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Day count: %s\n", counter.Name())
	if counter.Name() == calendar.PolicyBusiness {
		fmt.Printf("  Rest days: %s\n", strings.Join(cfg.Calendar.RestDays, ", "))
	}
	fmt.Println()

	today := time.Now().Format(calendar.DateLayout)
	rows := make([][]string, 0, len(h))
	for _, d := range h.Sorted() {
		day, err := time.Parse(calendar.DateLayout, d)
		if err != nil {
			continue
		}
		status := "upcoming"
		if d < today {
			status = "past"
		}
		rows = append(rows, []string{
			day.Format(cfg.General.DateFormat),
			cli.FormatDayOfWeek(int(day.Weekday())),
			status,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Holidays",
		Headers:  []string{"Date", "Day", "Status"},
		Rows:     rows,
		LeftCols: 3,
	}))
	return nil
}
