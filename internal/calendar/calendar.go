// Package calendar counts the days left before a due date.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date layout used for due dates and holidays.
const DateLayout = "2006-01-02"

// Policy names accepted by PolicyByName.
const (
	PolicyBusiness = "business"
	PolicyCalendar = "calendar"
)

// Counter counts the days between an instant and a due instant.
type Counter interface {
	DaysBetween(start, end time.Time) int
	Name() string
}

// BusinessDays counts the days in [start, end] that are neither rest days
// nor holidays. Dates are judged in the location of start.
type BusinessDays struct {
	RestDays map[time.Weekday]bool
	Holidays Holidays
}

// NewBusinessDays returns a counter that skips Sundays and the given holidays.
func NewBusinessDays(h Holidays) BusinessDays {
	return BusinessDays{
		RestDays: map[time.Weekday]bool{time.Sunday: true},
		Holidays: h,
	}
}

// Name implements Counter.
func (b BusinessDays) Name() string { return PolicyBusiness }

// DaysBetween counts the dates start, start+1d, ... that are not after end.
// Whole weeks are counted arithmetically. An end before start gives 0.
func (b BusinessDays) DaysBetween(start, end time.Time) int {
	n := spanDays(start, end)
	if n <= 0 {
		return 0
	}

	first := dayNumber(start)
	var perWeek int64
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !b.RestDays[wd] {
			perWeek++
		}
	}

	count := (n / 7) * perWeek
	wd := start.Weekday()
	for i := int64(0); i < n%7; i++ {
		if !b.RestDays[wd] {
			count++
		}
		wd = (wd + 1) % 7
	}

	for d := range b.Holidays {
		h, err := time.Parse(DateLayout, d)
		if err != nil {
			continue
		}
		if off := dayNumber(h) - first; off >= 0 && off < n && !b.RestDays[h.Weekday()] {
			count--
		}
	}
	return int(count)
}

// IsBusinessDay reports whether the date of t is a working day.
func (b BusinessDays) IsBusinessDay(t time.Time) bool {
	if b.RestDays[t.Weekday()] {
		return false
	}
	return !b.Holidays.Contains(t)
}

// CalendarDays counts raw calendar days: the ceiling of (end - start) in
// whole days, with no exclusions. The result is <= 0 once end has passed.
type CalendarDays struct{}

// Name implements Counter.
func (CalendarDays) Name() string { return PolicyCalendar }

// DaysBetween implements Counter.
func (CalendarDays) DaysBetween(start, end time.Time) int {
	end = end.In(start.Location())
	days := dayNumber(end) - dayNumber(start)
	if clockOffset(end) > clockOffset(start) {
		days++
	}
	return int(days)
}

// dayNumber is the count of days from 1970-01-01 to the date of t, read in
// t's own location.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// clockOffset is the wall-clock time of day of t.
func clockOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// spanDays is how many of start, start+1d, ... are not after end.
func spanDays(start, end time.Time) int64 {
	end = end.In(start.Location())
	n := dayNumber(end) - dayNumber(start)
	if clockOffset(start) <= clockOffset(end) {
		n++
	}
	return n
}

// PolicyByName builds the counter for a configured policy name.
// An empty name selects the business-day policy.
func PolicyByName(name string, h Holidays, restDays []time.Weekday) (Counter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyBusiness:
		b := NewBusinessDays(h)
		if restDays != nil {
			b.RestDays = make(map[time.Weekday]bool, len(restDays))
			for _, wd := range restDays {
				b.RestDays[wd] = true
			}
		}
		return b, nil
	case PolicyCalendar:
		return CalendarDays{}, nil
	default:
		return nil, fmt.Errorf("unknown day-count policy %q (want %s or %s)", name, PolicyBusiness, PolicyCalendar)
	}
}

// DueInstant returns 23:59:59 on the given ISO date in loc.
// ok is false when date does not parse.
func DueInstant(date string, loc *time.Location) (t time.Time, ok bool) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, false
	}
	return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), true
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
