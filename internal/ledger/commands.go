// Package ledger holds the debt list state transitions and the render
// cycle that ties storage, day counting and aggregation together.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/model"
)

// ErrNoSuchDebt is returned when a command targets a position outside the list.
var ErrNoSuchDebt = errors.New("no debt at that position")

// Add appends a new record with nothing saved yet.
func Add(records []model.DebtRecord, description string, amount decimal.Decimal, dueDate string) []model.DebtRecord {
	out := make([]model.DebtRecord, len(records), len(records)+1)
	copy(out, records)
	return append(out, model.DebtRecord{
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Saved:       decimal.Zero,
	})
}

// DeleteAt removes the record at i, keeping the others in order.
func DeleteAt(records []model.DebtRecord, i int) ([]model.DebtRecord, error) {
	if i < 0 || i >= len(records) {
		return nil, fmt.Errorf("delete %d of %d: %w", i+1, len(records), ErrNoSuchDebt)
	}
	out := make([]model.DebtRecord, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...), nil
}

// UpdateSavedAt sets the saved-so-far value of the record at i.
func UpdateSavedAt(records []model.DebtRecord, i int, saved decimal.Decimal) ([]model.DebtRecord, error) {
	if i < 0 || i >= len(records) {
		return nil, fmt.Errorf("update %d of %d: %w", i+1, len(records), ErrNoSuchDebt)
	}
	out := make([]model.DebtRecord, len(records))
	copy(out, records)
	out[i].Saved = saved
	return out, nil
}

// Command is one user action on the ledger.
type Command interface {
	apply(records []model.DebtRecord) ([]model.DebtRecord, error)
	String() string
}

// AddDebt appends a record.
type AddDebt struct {
	Description string
	Amount      decimal.Decimal
	DueDate     string
}

func (c AddDebt) apply(records []model.DebtRecord) ([]model.DebtRecord, error) {
	return Add(records, c.Description, c.Amount, c.DueDate), nil
}

func (c AddDebt) String() string {
	return fmt.Sprintf("add %q %s due %s", c.Description, c.Amount, c.DueDate)
}

// DeleteDebt removes the record at Index (0-based).
type DeleteDebt struct {
	Index int
}

func (c DeleteDebt) apply(records []model.DebtRecord) ([]model.DebtRecord, error) {
	return DeleteAt(records, c.Index)
}

func (c DeleteDebt) String() string { return fmt.Sprintf("delete #%d", c.Index+1) }

// CommitSaved records a new saved-so-far value for the record at Index.
type CommitSaved struct {
	Index int
	Saved decimal.Decimal
}

func (c CommitSaved) apply(records []model.DebtRecord) ([]model.DebtRecord, error) {
	return UpdateSavedAt(records, c.Index, c.Saved)
}

func (c CommitSaved) String() string {
	return fmt.Sprintf("save #%d = %s", c.Index+1, c.Saved)
}

// Apply runs cmd against records and returns the new list.
func Apply(records []model.DebtRecord, cmd Command) ([]model.DebtRecord, error) {
	if cmd == nil {
		return records, nil
	}
	return cmd.apply(records)
}

// ParseAmount parses a decimal number, returning zero on any failure.
// The last of "." and "," is the decimal separator and the other one groups
// thousands, so both 1,234.56 and 1.234,56 read as 1234.56. A separator
// that appears more than once on its own only groups thousands.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	dec, group := ".", ","
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		dec, group = ",", "."
	}
	s = strings.ReplaceAll(s, group, "")
	if strings.Count(s, dec) > 1 {
		s = strings.ReplaceAll(s, dec, "")
	}
	s = strings.Replace(s, dec, ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
