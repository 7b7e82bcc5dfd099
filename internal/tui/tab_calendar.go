package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/cli"
	"github.com/theirongolddev/dledger/internal/tui/components"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	policy := a.ledger.Counter().Name()
	rest := strings.Join(a.cfg.Calendar.RestDays, ", ")
	if policy == calendar.PolicyCalendar {
		rest = "none (every day counts)"
	}

	var pb strings.Builder
	fmt.Fprintf(&pb, "%s%s\n", labelStyle.Render(fmt.Sprintf("%-12s", "Day count")), valueStyle.Render(policy))
	fmt.Fprintf(&pb, "%s%s\n", labelStyle.Render(fmt.Sprintf("%-12s", "Rest days")), valueStyle.Render(rest))
	fmt.Fprintf(&pb, "%s%s", labelStyle.Render(fmt.Sprintf("%-12s", "Holidays")),
		valueStyle.Render(fmt.Sprintf("%d", len(a.cfg.Calendar.Holidays))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Policy", pb.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Holidays", a.renderHolidayList(), cw))
	return b.String()
}

// renderHolidayList lists configured holidays with their weekday, dimming
// the ones already behind the report time.
func (a App) renderHolidayList() string {
	t := theme.Active

	upcoming := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	past := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	now := a.report.GeneratedAt
	if now.IsZero() {
		now = time.Now()
	}

	h, err := calendar.NewHolidays(a.cfg.Calendar.Holidays)
	if err != nil {
		return lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface).Render(err.Error())
	}
	dates := h.Sorted()
	if len(dates) == 0 {
		return past.Render("No holidays configured.")
	}

	lines := make([]string, 0, len(dates))
	for _, d := range dates {
		day, err := time.ParseInLocation(calendar.DateLayout, d, now.Location())
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%s  %s", cli.FormatDayOfWeek(int(day.Weekday())), day.Format(a.cfg.General.DateFormat))
		if day.Before(now) && day.Format(calendar.DateLayout) != now.Format(calendar.DateLayout) {
			lines = append(lines, past.Render(line))
		} else {
			lines = append(lines, upcoming.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
