// Package config loads and saves the dledger TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/store"
)

// Config holds all dledger configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds display and day-count preferences.
type GeneralConfig struct {
	DayCount   string `toml:"day_count"` // "business" or "calendar"
	Currency   string `toml:"currency"`
	DateFormat string `toml:"date_format"` // Go layout for displayed due dates
}

// StorageConfig selects where the debt list lives.
type StorageConfig struct {
	Backend string `toml:"backend"` // "sqlite" or "bolt"
	Path    string `toml:"path,omitempty"`
}

// CalendarConfig holds the non-business days.
type CalendarConfig struct {
	Holidays []string `toml:"holidays"`
	RestDays []string `toml:"rest_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DayCount:   calendar.PolicyBusiness,
			Currency:   "R$",
			DateFormat: "02/01/2006",
		},
		Storage: StorageConfig{
			Backend: store.BackendSQLite,
		},
		Calendar: CalendarConfig{
			Holidays: append([]string(nil), calendar.DefaultHolidays...),
			RestDays: []string{"sunday"},
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dledger")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dledger")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(cfg, Path())
}

// SaveTo writes the config to path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// StorePath returns the configured store path, or the backend default.
func (c Config) StorePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return store.DefaultPath(c.Storage.Backend)
}

// Counter builds the configured day-count policy.
func (c Config) Counter() (calendar.Counter, error) {
	h, err := calendar.NewHolidays(c.Calendar.Holidays)
	if err != nil {
		return nil, err
	}

	var rest []time.Weekday
	if c.Calendar.RestDays != nil {
		rest = make([]time.Weekday, 0, len(c.Calendar.RestDays))
		for _, name := range c.Calendar.RestDays {
			wd, err := calendar.ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("rest_days: %w", err)
			}
			rest = append(rest, wd)
		}
	}

	return calendar.PolicyByName(c.General.DayCount, h, rest)
}
