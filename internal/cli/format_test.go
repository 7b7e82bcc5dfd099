package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in     string
		symbol string
		want   string
	}{
		{"0", "R$", "R$ 0.00"},
		{"1234.5", "R$", "R$ 1,234.50"},
		{"1200", "", "1,200.00"},
		{"33.335", "$", "$ 33.34"},
		{"-1500.1", "€", "€ -1,500.10"},
		{"1234567.891", "", "1,234,567.89"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), tt.symbol)
		if got != tt.want {
			t.Errorf("FormatMoney(%s, %q) = %q, want %q", tt.in, tt.symbol, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567", -4500: "-4,500",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	pct := decimal.NewFromInt(50).Div(decimal.NewFromInt(150)).Mul(decimal.NewFromInt(100))
	if got := FormatPercent(pct); got != "33.33%" {
		t.Fatalf("FormatPercent = %q, want 33.33%%", got)
	}
}

func TestRowFormatting(t *testing.T) {
	due := time.Date(2025, time.December, 1, 23, 59, 59, 0, time.UTC)
	ok := model.DebtRow{Due: due, DueValid: true, RemainingDays: 12, PerDay: decimal.NewFromInt(100)}
	if got := FormatDue(ok, "02/01/2006"); got != "01/12/2025" {
		t.Errorf("FormatDue = %q", got)
	}
	if got := FormatRemaining(ok); got != "12" {
		t.Errorf("FormatRemaining = %q", got)
	}
	if got := FormatPerDay(ok, "R$"); got != "R$ 100.00" {
		t.Errorf("FormatPerDay = %q", got)
	}

	bad := model.DebtRow{Overdue: true}
	if got := FormatDue(bad, "02/01/2006"); got != InvalidDate {
		t.Errorf("FormatDue(invalid) = %q", got)
	}
	if FormatRemaining(bad) != Overdue || FormatPerDay(bad, "R$") != Overdue {
		t.Error("overdue row not rendered as overdue")
	}
}

func TestDebtTable(t *testing.T) {
	report := model.Report{Rows: []model.DebtRow{
		{
			Index:         0,
			Record:        model.DebtRecord{Description: "Rent", Amount: decimal.NewFromInt(1200), DueDate: "2025-12-01"},
			Due:           time.Date(2025, time.December, 1, 23, 59, 59, 0, time.UTC),
			DueValid:      true,
			RemainingDays: 40,
			PerDay:        decimal.NewFromInt(30),
		},
	}}

	tbl := DebtTable(report, "R$", "2006-01-02")
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	want := []string{"1", "Rent", "R$ 1,200.00", "2025-12-01", "40", "R$ 30.00", "R$ 0.00"}
	for i, w := range want {
		if tbl.Rows[0][i] != w {
			t.Errorf("cell %d = %q, want %q", i, tbl.Rows[0][i], w)
		}
	}

	out := RenderTable(tbl)
	if !strings.Contains(out, "Rent") || !strings.Contains(out, "Days Left") {
		t.Fatalf("rendered table missing content:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", got)
	}
}
