package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/dledger/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite keeps the debt list in a one-table key-value database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load reads the debt list. A missing key yields an empty list.
func (s *SQLite) Load() ([]model.DebtRecord, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", Key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.DebtRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Key, err)
	}
	return Decode([]byte(value)), nil
}

// Save replaces the stored debt list.
func (s *SQLite) Save(records []model.DebtRecord) error {
	data, err := Encode(records)
	if err != nil {
		return fmt.Errorf("encoding debts: %w", err)
	}

	if err := s.putRaw(string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", Key, err)
	}
	return nil
}

// putRaw stores an arbitrary payload under Key.
func (s *SQLite) putRaw(value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		Key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// UpdatedAt returns when the debt list was last written, or the zero time.
func (s *SQLite) UpdatedAt() (time.Time, error) {
	var ts string
	err := s.db.QueryRow("SELECT updated_at FROM kv WHERE key = ?", Key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	t, _ := time.Parse(time.RFC3339, ts)
	return t, nil
}
