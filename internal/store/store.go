// Package store persists the debt list under a single key.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/model"
)

// Key is the storage key holding the serialized debt list.
const Key = "debts"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Store loads and saves the full ordered debt list.
type Store interface {
	Load() ([]model.DebtRecord, error)
	Save(records []model.DebtRecord) error
	Close() error
}

// Open opens the named backend at path. An empty backend selects SQLite.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case "", BackendSQLite:
		return OpenSQLite(path)
	case BackendBolt:
		return OpenBolt(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// DataDir returns the XDG data directory for the ledger.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dledger")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dledger")
}

// DefaultPath returns the default store file for a backend.
func DefaultPath(backend string) string {
	if strings.ToLower(backend) == BackendBolt {
		return filepath.Join(DataDir(), "ledger.bolt")
	}
	return filepath.Join(DataDir(), "ledger.db")
}

// wireRecord is the persisted shape of a record.
type wireRecord struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	DueDate     string      `json:"due-date"`
	Saved       json.Number `json:"saved"`
}

// Encode serializes records as a JSON array with numeric amounts.
func Encode(records []model.DebtRecord) ([]byte, error) {
	wire := make([]wireRecord, len(records))
	for i, r := range records {
		wire[i] = wireRecord{
			Description: r.Description,
			Amount:      json.Number(r.Amount.String()),
			DueDate:     r.DueDate,
			Saved:       json.Number(r.Saved.String()),
		}
	}
	return json.Marshal(wire)
}

// Decode parses a stored payload. A nil, empty or unparsable payload
// yields an empty list; missing numbers decode as zero.
func Decode(data []byte) []model.DebtRecord {
	if len(data) == 0 {
		return []model.DebtRecord{}
	}

	var wire []wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return []model.DebtRecord{}
	}

	records := make([]model.DebtRecord, 0, len(wire))
	for _, w := range wire {
		records = append(records, model.DebtRecord{
			Description: w.Description,
			Amount:      numberOrZero(w.Amount),
			DueDate:     w.DueDate,
			Saved:       numberOrZero(w.Saved),
		})
	}
	return records
}

func numberOrZero(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
