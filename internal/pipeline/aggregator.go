// Package pipeline derives per-debt figures and ledger totals.
package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/model"
)

var hundred = decimal.NewFromInt(100)

// RemainingDays returns the counted days between now and the end of the
// record's due date. Unparsable dates count as 0 (overdue).
func RemainingDays(r model.DebtRecord, now time.Time, c calendar.Counter) int {
	due, ok := calendar.DueInstant(r.DueDate, now.Location())
	if !ok {
		return 0
	}
	return c.DaysBetween(now, due)
}

// Evaluate computes the derived row for each record, in input order.
func Evaluate(records []model.DebtRecord, now time.Time, c calendar.Counter) []model.DebtRow {
	rows := make([]model.DebtRow, 0, len(records))
	for i, r := range records {
		row := model.DebtRow{
			Index:           i,
			Record:          r,
			RemainingAmount: r.Remaining(),
		}
		row.Due, row.DueValid = calendar.DueInstant(r.DueDate, now.Location())
		if row.DueValid {
			row.RemainingDays = c.DaysBetween(now, row.Due)
		}

		if row.RemainingDays > 0 {
			row.PerDay = row.RemainingAmount.Div(decimal.NewFromInt(int64(row.RemainingDays)))
		} else {
			row.Overdue = true
		}
		rows = append(rows, row)
	}
	return rows
}

// Aggregate computes ledger totals from evaluated rows. Overdue rows count
// toward the totals but not toward the daily target.
func Aggregate(rows []model.DebtRow) model.Summary {
	var s model.Summary
	for _, row := range rows {
		s.Count++
		s.Total = s.Total.Add(row.Record.Amount)
		s.Saved = s.Saved.Add(row.Record.Saved)
		if row.Overdue {
			s.OverdueCount++
			continue
		}
		s.DailyTarget = s.DailyTarget.Add(row.PerDay)
	}

	s.Needed = s.Total.Sub(s.Saved)
	if !s.Total.IsZero() {
		s.PercentSaved = s.Saved.Div(s.Total).Mul(hundred)
	}
	return s
}

// SortByRemaining returns a copy of records ordered by ascending remaining
// days. Ties keep their stored order.
func SortByRemaining(records []model.DebtRecord, now time.Time, c calendar.Counter) []model.DebtRecord {
	days := make([]int, len(records))
	idx := make([]int, len(records))
	for i, r := range records {
		days[i] = RemainingDays(r, now, c)
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return days[idx[a]] < days[idx[b]]
	})

	sorted := make([]model.DebtRecord, len(records))
	for i, j := range idx {
		sorted[i] = records[j]
	}
	return sorted
}

// Build evaluates and aggregates records into a report. The records are
// expected to be in display order already.
func Build(records []model.DebtRecord, now time.Time, c calendar.Counter) model.Report {
	rows := Evaluate(records, now, c)
	return model.Report{
		Rows:        rows,
		Summary:     Aggregate(rows),
		GeneratedAt: now,
	}
}

// FilterOverdue returns only the overdue rows.
func FilterOverdue(rows []model.DebtRow) []model.DebtRow {
	var out []model.DebtRow
	for _, r := range rows {
		if r.Overdue {
			out = append(out, r)
		}
	}
	return out
}
