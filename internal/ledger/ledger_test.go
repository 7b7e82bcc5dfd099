package ledger

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/model"
	"github.com/theirongolddev/dledger/internal/store"
)

var brt = time.FixedZone("BRT", -3*60*60)

func fixedClock() time.Time {
	return time.Date(2025, time.October, 13, 9, 0, 0, 0, brt) // Monday
}

func newTestLedger(t *testing.T) (*Ledger, *store.Memory) {
	t.Helper()
	h, err := calendar.NewHolidays(calendar.DefaultHolidays)
	if err != nil {
		t.Fatalf("NewHolidays: %v", err)
	}
	mem := store.NewMemory()
	return New(mem, calendar.NewBusinessDays(h), WithClock(fixedClock)), mem
}

func seed(t *testing.T, mem *store.Memory, records ...model.DebtRecord) {
	t.Helper()
	if err := mem.Save(records); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func debt(desc string, amount int64, due string) model.DebtRecord {
	return model.DebtRecord{Description: desc, Amount: decimal.NewFromInt(amount), DueDate: due}
}

func descriptions(rows []model.DebtRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Record.Description
	}
	return out
}

func TestDeleteAt_PreservesOrder(t *testing.T) {
	records := []model.DebtRecord{debt("a", 1, ""), debt("b", 2, ""), debt("c", 3, ""), debt("d", 4, "")}
	for i := range records {
		got, err := DeleteAt(records, i)
		if err != nil {
			t.Fatalf("DeleteAt(%d): %v", i, err)
		}
		if len(got) != len(records)-1 {
			t.Fatalf("DeleteAt(%d) len = %d, want %d", i, len(got), len(records)-1)
		}
		j := 0
		for k, r := range records {
			if k == i {
				continue
			}
			if got[j].Description != r.Description {
				t.Fatalf("DeleteAt(%d)[%d] = %s, want %s", i, j, got[j].Description, r.Description)
			}
			j++
		}
	}
	if len(records) != 4 || records[0].Description != "a" {
		t.Fatal("DeleteAt mutated its input")
	}
}

func TestIndexErrors(t *testing.T) {
	records := []model.DebtRecord{debt("a", 1, "")}
	if _, err := DeleteAt(records, 1); !errors.Is(err, ErrNoSuchDebt) {
		t.Fatalf("DeleteAt(1) err = %v, want ErrNoSuchDebt", err)
	}
	if _, err := UpdateSavedAt(records, -1, decimal.Zero); !errors.Is(err, ErrNoSuchDebt) {
		t.Fatalf("UpdateSavedAt(-1) err = %v, want ErrNoSuchDebt", err)
	}
}

func TestUpdateSavedAt(t *testing.T) {
	records := []model.DebtRecord{debt("a", 100, ""), debt("b", 50, "")}
	got, err := UpdateSavedAt(records, 1, decimal.NewFromInt(20))
	if err != nil {
		t.Fatalf("UpdateSavedAt: %v", err)
	}
	if !got[1].Saved.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("Saved = %s, want 20", got[1].Saved)
	}
	if !records[1].Saved.IsZero() {
		t.Fatal("UpdateSavedAt mutated its input")
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]string{
		"1200":      "1200",
		" 12.5 ":    "12.5",
		"12,5":      "12.5",
		"1,200.50":  "1200.5",
		"1.234,56":  "1234.56",
		"1.234":     "1.234",
		"1.234.567": "1234567",
		"1,234,567": "1234567",
		"":          "0",
		"abc":       "0",
		"12abc":     "0",
		"-3":        "-3",
	}
	for in, want := range tests {
		if got := ParseAmount(in); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestView_SortsAndPersistsOrder(t *testing.T) {
	l, mem := newTestLedger(t)
	seed(t, mem,
		debt("far", 100, "2025-12-01"),
		debt("near", 100, "2025-10-15"),
		debt("late", 100, "2025-10-01"),
	)

	report, err := l.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	want := []string{"late", "near", "far"}
	got := descriptions(report.Rows)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rows = %v, want %v", got, want)
		}
	}

	stored, _ := mem.Load()
	for i := range want {
		if stored[i].Description != want[i] {
			t.Fatalf("stored order = %v, want %v", stored, want)
		}
	}
}

func TestDispatch_AddRent(t *testing.T) {
	l, mem := newTestLedger(t)
	seed(t, mem, debt("Card", 300, "2025-10-20"))

	report, err := l.Dispatch(AddDebt{Description: "Rent", Amount: decimal.NewFromInt(1200), DueDate: "2025-12-01"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	stored, _ := mem.Load()
	if len(stored) != 2 {
		t.Fatalf("stored len = %d, want 2", len(stored))
	}
	var found bool
	for _, r := range stored {
		if r.Description == "Rent" {
			found = true
			if !r.Saved.IsZero() {
				t.Fatalf("new record Saved = %s, want 0", r.Saved)
			}
			if !r.Amount.Equal(decimal.NewFromInt(1200)) || r.DueDate != "2025-12-01" {
				t.Fatalf("stored Rent = %+v", r)
			}
		}
	}
	if !found {
		t.Fatal("Rent not persisted")
	}

	rows := descriptions(report.Rows)
	if len(rows) != 2 || rows[0] != "Card" || rows[1] != "Rent" {
		t.Fatalf("rendered rows = %v, want [Card Rent]", rows)
	}
}

func TestDispatch_DeleteShrinksStoredList(t *testing.T) {
	l, mem := newTestLedger(t)
	seed(t, mem,
		debt("a", 1, "2025-10-14"),
		debt("b", 1, "2025-10-15"),
		debt("c", 1, "2025-10-16"),
	)
	if _, err := l.View(); err != nil {
		t.Fatalf("View: %v", err)
	}

	report, err := l.Dispatch(DeleteDebt{Index: 1})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	stored, _ := mem.Load()
	if len(stored) != 2 || stored[0].Description != "a" || stored[1].Description != "c" {
		t.Fatalf("stored = %+v, want [a c]", stored)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("report rows = %d, want 2", len(report.Rows))
	}
}

func TestDispatch_CommitSaved(t *testing.T) {
	l, mem := newTestLedger(t)
	seed(t, mem, debt("A", 100, "2025-10-23")) // 10 business days

	report, err := l.Dispatch(CommitSaved{Index: 0, Saved: ParseAmount("40")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	row := report.Rows[0]
	if !row.Record.Saved.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("Saved = %s, want 40", row.Record.Saved)
	}
	if !row.PerDay.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("PerDay = %s, want 6", row.PerDay)
	}

	// Unparsable input commits zero.
	report, err = l.Dispatch(CommitSaved{Index: 0, Saved: ParseAmount("lots")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !report.Rows[0].Record.Saved.IsZero() {
		t.Fatalf("Saved = %s, want 0", report.Rows[0].Record.Saved)
	}
}

func TestDispatch_BadIndexLeavesStoreUntouched(t *testing.T) {
	l, mem := newTestLedger(t)
	seed(t, mem, debt("A", 100, "2025-10-23"))
	before := mem.Saves()

	if _, err := l.Dispatch(DeleteDebt{Index: 3}); !errors.Is(err, ErrNoSuchDebt) {
		t.Fatalf("err = %v, want ErrNoSuchDebt", err)
	}
	if mem.Saves() != before {
		t.Fatalf("store saved %d times after failed command", mem.Saves()-before)
	}
}

func TestView_CorruptStoreRendersEmpty(t *testing.T) {
	l, mem := newTestLedger(t)
	mem.SetRaw([]byte("<<corrupt>>"))

	report, err := l.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(report.Rows) != 0 || report.Summary.Count != 0 {
		t.Fatalf("report = %+v, want empty", report)
	}
}

// pausingStore blocks its first Load until release is closed.
type pausingStore struct {
	*store.Memory
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func (p *pausingStore) Load() ([]model.DebtRecord, error) {
	records, err := p.Memory.Load()
	p.once.Do(func() {
		close(p.loaded)
		<-p.release
	})
	return records, err
}

func TestDispatch_WaitsForViewInFlight(t *testing.T) {
	h, err := calendar.NewHolidays(calendar.DefaultHolidays)
	if err != nil {
		t.Fatalf("NewHolidays: %v", err)
	}
	ps := &pausingStore{
		Memory:  store.NewMemory(),
		loaded:  make(chan struct{}),
		release: make(chan struct{}),
	}
	seed(t, ps.Memory, debt("Card", 300, "2025-10-20"))
	l := New(ps, calendar.NewBusinessDays(h), WithClock(fixedClock))

	viewDone := make(chan error, 1)
	go func() {
		_, err := l.View()
		viewDone <- err
	}()
	<-ps.loaded

	addDone := make(chan error, 1)
	go func() {
		_, err := l.Dispatch(AddDebt{Description: "Rent", Amount: decimal.NewFromInt(1200), DueDate: "2025-12-01"})
		addDone <- err
	}()

	select {
	case <-addDone:
		t.Fatal("Dispatch finished while View was between load and save")
	case <-time.After(50 * time.Millisecond):
	}

	close(ps.release)
	if err := <-viewDone; err != nil {
		t.Fatalf("View: %v", err)
	}
	if err := <-addDone; err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	stored, _ := ps.Memory.Load()
	if len(stored) != 2 {
		t.Fatalf("stored %d records, want 2 (added debt lost)", len(stored))
	}
}
