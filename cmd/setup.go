package cmd

import (
	"fmt"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/config"
	"github.com/theirongolddev/dledger/internal/store"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to dledger!").
				Description("A few questions, then you're set.\nConfig is saved to "+config.Path()),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should days until due be counted?").
				Options(
					huh.NewOption("Business days (skip rest days and holidays)", calendar.PolicyBusiness),
					huh.NewOption("Calendar days", calendar.PolicyCalendar),
				).
				Value(&cfg.General.DayCount),
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.General.Currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should debts be stored?").
				Options(
					huh.NewOption("SQLite ("+store.DefaultPath(store.BackendSQLite)+")", store.BackendSQLite),
					huh.NewOption("bbolt ("+store.DefaultPath(store.BackendBolt)+")", store.BackendBolt),
				).
				Value(&cfg.Storage.Backend),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `dledger setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
