package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/cli"
	"github.com/theirongolddev/dledger/internal/config"
	"github.com/theirongolddev/dledger/internal/ledger"
	"github.com/theirongolddev/dledger/internal/model"
	"github.com/theirongolddev/dledger/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagStore   string
	flagBackend string
	flagPolicy  string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:          "dledger",
	Short:        "Debt ledger with business-day savings targets",
	Long:         "Track debts, what you have saved toward them, and how much to put aside per business day.",
	SilenceUsage: true,
	RunE:         runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStore, "store", "s", "", "Store file (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: sqlite, bolt or memory")
	rootCmd.PersistentFlags().StringVar(&flagPolicy, "policy", "", "Day count: business or calendar")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notes on stderr")
}

// loadConfig reads the config file and applies flag overrides.
// A broken config file is reported and defaults are used instead.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		note("  Config unusable (%v), using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
		if flagStore == "" {
			cfg.Storage.Path = ""
		}
	}
	if flagStore != "" {
		cfg.Storage.Path = flagStore
	}
	if flagPolicy != "" {
		cfg.General.DayCount = flagPolicy
	}
	return cfg
}

// openLedger is the shared setup path used by all ledger commands.
// The caller must close the returned store.
func openLedger() (*ledger.Ledger, store.Store, config.Config, error) {
	cfg := loadConfig()

	counter, err := cfg.Counter()
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("building day counter: %w", err)
	}

	s, err := store.Open(cfg.Storage.Backend, cfg.StorePath())
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("opening store: %w", err)
	}

	return ledger.New(s, counter), s, cfg, nil
}

// dispatch runs one command against the ledger and prints the result.
func dispatch(cmd ledger.Command) error {
	l, s, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := l.Dispatch(cmd)
	if err != nil {
		return err
	}

	note("  %s\n", cmd)
	printReport(report, cfg, l.Counter())
	return nil
}

func printReport(report model.Report, cfg config.Config, c calendar.Counter) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DEBTS  %s days", c.Name())))
	fmt.Println()

	if len(report.Rows) == 0 {
		fmt.Println("  No debts yet. Add one with `dledger add`.")
		fmt.Println()
		return
	}

	fmt.Print(cli.RenderTable(cli.DebtTable(report, cfg.General.Currency, cfg.General.DateFormat)))
	fmt.Println()
	fmt.Print(cli.RenderSummary(report.Summary, cfg.General.Currency, 30))
}

// note writes a progress or status line to stderr unless --quiet.
func note(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
