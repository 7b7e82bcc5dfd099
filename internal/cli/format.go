// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/dledger/internal/model"
)

// InvalidDate is shown for due dates that do not parse.
const InvalidDate = "Invalid Date"

// Overdue is shown in place of remaining days and per-day targets.
const Overdue = "overdue"

// FormatMoney formats an amount with two decimals, thousands separators and
// an optional currency symbol. e.g., 1234.5 -> "R$ 1,234.50"
func FormatMoney(d decimal.Decimal, symbol string) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}

	n, err := strconv.ParseInt(whole, 10, 64)
	if err == nil {
		whole = FormatNumber(n)
	}

	out := whole + frac
	if neg {
		out = "-" + out
	}
	if symbol != "" {
		out = symbol + " " + out
	}
	return out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value with two decimals.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatDue renders a row's due date with layout, or InvalidDate.
func FormatDue(row model.DebtRow, layout string) string {
	if !row.DueValid {
		return InvalidDate
	}
	return row.Due.Format(layout)
}

// FormatRemaining renders remaining days or Overdue.
func FormatRemaining(row model.DebtRow) string {
	if row.Overdue {
		return Overdue
	}
	return strconv.Itoa(row.RemainingDays)
}

// FormatPerDay renders the per-day target or Overdue.
func FormatPerDay(row model.DebtRow, symbol string) string {
	if row.Overdue {
		return Overdue
	}
	return FormatMoney(row.PerDay, symbol)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
