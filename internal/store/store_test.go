package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/model"
)

func sample() []model.DebtRecord {
	return []model.DebtRecord{
		{Description: "Rent", Amount: decimal.NewFromInt(1200), DueDate: "2025-12-01", Saved: decimal.Zero},
		{Description: "Card", Amount: decimal.RequireFromString("349.90"), DueDate: "2025-11-10", Saved: decimal.RequireFromString("100.5")},
		{Description: "Odd date", Amount: decimal.NewFromInt(5), DueDate: "someday", Saved: decimal.Zero},
	}
}

func assertSame(t *testing.T, got, want []model.DebtRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backends := []struct {
		name string
		path string
	}{
		{BackendSQLite, filepath.Join(dir, "ledger.db")},
		{BackendBolt, filepath.Join(dir, "ledger.bolt")},
		{BackendMemory, ""},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s, err := Open(b.name, b.path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer func() { _ = s.Close() }()

			empty, err := s.Load()
			if err != nil {
				t.Fatalf("Load (empty): %v", err)
			}
			if empty == nil || len(empty) != 0 {
				t.Fatalf("Load on fresh store = %v, want empty non-nil list", empty)
			}

			if err := s.Save(sample()); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			assertSame(t, got, sample())

			// Overwrite replaces, not appends.
			if err := s.Save(sample()[:1]); err != nil {
				t.Fatalf("Save (shrink): %v", err)
			}
			got, _ = s.Load()
			assertSame(t, got, sample()[:1])
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Save(sample()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s.Close() }()
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSame(t, got, sample())

	ts, err := s.UpdatedAt()
	if err != nil || ts.IsZero() {
		t.Fatalf("UpdatedAt = %v, %v; want a timestamp", ts, err)
	}
}

func TestCorruptPayloadLoadsEmpty(t *testing.T) {
	dir := t.TempDir()

	sq, err := OpenSQLite(filepath.Join(dir, "ledger.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = sq.Close() }()
	if err := sq.putRaw("{not json"); err != nil {
		t.Fatalf("putRaw: %v", err)
	}
	if got, err := sq.Load(); err != nil || len(got) != 0 {
		t.Fatalf("sqlite Load(corrupt) = %v, %v; want empty, nil", got, err)
	}

	bo, err := OpenBolt(filepath.Join(dir, "ledger.bolt"))
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer func() { _ = bo.Close() }()
	if err := bo.putRaw([]byte("null garbage")); err != nil {
		t.Fatalf("putRaw: %v", err)
	}
	if got, err := bo.Load(); err != nil || len(got) != 0 {
		t.Fatalf("bolt Load(corrupt) = %v, %v; want empty, nil", got, err)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []model.DebtRecord
	}{
		{"nil", "", []model.DebtRecord{}},
		{"null", "null", []model.DebtRecord{}},
		{"object", `{"description":"x"}`, []model.DebtRecord{}},
		{
			"missing saved",
			`[{"description":"Gym","amount":89.9,"due-date":"2025-11-05"}]`,
			[]model.DebtRecord{{Description: "Gym", Amount: decimal.RequireFromString("89.9"), DueDate: "2025-11-05"}},
		},
		{
			"null amount",
			`[{"description":"NaN","amount":null,"due-date":"2025-11-05","saved":0}]`,
			[]model.DebtRecord{{Description: "NaN", DueDate: "2025-11-05"}},
		},
		{
			"quoted numbers",
			`[{"description":"Q","amount":"12.50","due-date":"2025-11-05","saved":"2"}]`,
			[]model.DebtRecord{{Description: "Q", Amount: decimal.RequireFromString("12.5"), DueDate: "2025-11-05", Saved: decimal.NewFromInt(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.payload))
			if got == nil {
				t.Fatal("Decode returned nil slice")
			}
			assertSame(t, got, tt.want)
		})
	}
}

func TestEncode_NumbersUnquoted(t *testing.T) {
	data, err := Encode(sample()[:1])
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `[{"description":"Rent","amount":1200,"due-date":"2025-12-01","saved":0}]`
	if string(data) != want {
		t.Fatalf("Encode = %s, want %s", data, want)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open("redis", ""); err == nil {
		t.Fatal("Open(redis) returned nil error")
	}
}

func TestMemory_StoresEncodedPayload(t *testing.T) {
	m := NewMemory()
	if err := m.Save(sample()[:1]); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := `[{"description":"Rent","amount":1200,"due-date":"2025-12-01","saved":0}]`
	if got := string(m.Raw()); got != want {
		t.Fatalf("Raw = %s, want %s", got, want)
	}
}
