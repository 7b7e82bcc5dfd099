package calendar

import (
	"fmt"
	"sort"
	"time"
)

// DefaultHolidays is the 2025 national holiday calendar.
var DefaultHolidays = []string{
	"2025-01-01", // New Year
	"2025-04-18", // Good Friday
	"2025-04-21", // Tiradentes
	"2025-05-01", // Labour Day
	"2025-09-07", // Independence Day
	"2025-10-12", // Our Lady of Aparecida
	"2025-11-02", // All Souls
	"2025-11-15", // Republic Day
	"2025-12-25", // Christmas
}

// Holidays is a set of ISO dates.
type Holidays map[string]struct{}

// NewHolidays builds a set from ISO date strings. Every entry must parse.
func NewHolidays(dates []string) (Holidays, error) {
	h := make(Holidays, len(dates))
	for _, d := range dates {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", d, err)
		}
		h[t.Format(DateLayout)] = struct{}{}
	}
	return h, nil
}

// Contains reports whether the date of t (in its own location) is a holiday.
func (h Holidays) Contains(t time.Time) bool {
	_, ok := h[t.Format(DateLayout)]
	return ok
}

// Sorted returns the holiday dates in ascending order.
func (h Holidays) Sorted() []string {
	out := make([]string, 0, len(h))
	for d := range h {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
