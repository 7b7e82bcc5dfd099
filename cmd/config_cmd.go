// Package cmd implements the dledger CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dledger/internal/config"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Day count:   %s\n", cfg.General.DayCount)
	fmt.Printf("    Currency:    %s\n", cfg.General.Currency)
	fmt.Printf("    Date format: %s\n", cfg.General.DateFormat)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("    Path:    %s\n", cfg.StorePath())
	fmt.Println()

	fmt.Println("  [Calendar]")
	fmt.Printf("    Rest days: %s\n", strings.Join(cfg.Calendar.RestDays, ", "))
	fmt.Printf("    Holidays:  %d configured\n", len(cfg.Calendar.Holidays))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s (available: %s)\n", cfg.Appearance.Theme, strings.Join(theme.Names(), ", "))
	fmt.Println()

	fmt.Println("  Run `dledger setup` to reconfigure.")
	return nil
}
