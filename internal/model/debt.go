// Package model defines the ledger's record and report types.
package model

import "github.com/shopspring/decimal"

// DebtRecord is one tracked debt. DueDate is kept as the ISO string the
// user typed so malformed dates survive a round trip unchanged.
type DebtRecord struct {
	Description string
	Amount      decimal.Decimal
	DueDate     string
	Saved       decimal.Decimal
}

// Remaining returns the amount still to be saved. It goes negative when
// more than the amount has been saved.
func (d DebtRecord) Remaining() decimal.Decimal {
	return d.Amount.Sub(d.Saved)
}

// Equal reports whether two records hold the same values.
func (d DebtRecord) Equal(o DebtRecord) bool {
	return d.Description == o.Description &&
		d.DueDate == o.DueDate &&
		d.Amount.Equal(o.Amount) &&
		d.Saved.Equal(o.Saved)
}
