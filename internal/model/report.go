package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtRow holds the derived figures for one record as displayed.
type DebtRow struct {
	Index  int // position in the persisted (sorted) list
	Record DebtRecord

	Due      time.Time // 23:59:59 local on the due date
	DueValid bool

	RemainingDays   int
	RemainingAmount decimal.Decimal
	PerDay          decimal.Decimal // zero when overdue
	Overdue         bool
}

// Summary holds the aggregate across all records.
type Summary struct {
	Count        int
	OverdueCount int

	Total        decimal.Decimal
	Saved        decimal.Decimal
	Needed       decimal.Decimal
	PercentSaved decimal.Decimal // 0-100
	DailyTarget  decimal.Decimal
}

// Report is one full render of the ledger.
type Report struct {
	Rows        []DebtRow
	Summary     Summary
	GeneratedAt time.Time
}
