package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dledger/internal/cli"
	"github.com/theirongolddev/dledger/internal/tui/components"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	s := a.report.Summary
	cur := a.cfg.General.Currency

	pct, _ := s.PercentSaved.Float64()
	frac := pct / 100

	row1 := components.MetricCardRow([]components.Metric{
		{Label: "Total Owed", Value: cli.FormatMoney(s.Total, cur), Note: fmt.Sprintf("%d debts", s.Count)},
		{Label: "Saved", Value: cli.FormatMoney(s.Saved, cur), Color: t.Saved},
		{Label: "Still Needed", Value: cli.FormatMoney(s.Needed, cur), Color: t.Warn},
	}, cw)

	overdueColor := t.TextPrimary
	if s.OverdueCount > 0 {
		overdueColor = t.Overdue
	}
	row2 := components.MetricCardRow([]components.Metric{
		{Label: "Daily Target", Value: cli.FormatMoney(s.DailyTarget, cur), Note: "across open debts", Color: t.Accent},
		{Label: "Saved %", Value: cli.FormatPercent(s.PercentSaved), Color: components.ColorForSaved(frac)},
		{Label: "Overdue", Value: fmt.Sprintf("%d", s.OverdueCount), Color: overdueColor},
	}, cw)

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 12 - 8
	progressCard := components.ContentCard("Progress",
		components.SavingsBar("Saved", frac, 10, barW), cw)

	var b strings.Builder
	b.WriteString(row1)
	b.WriteString("\n")
	b.WriteString(row2)
	b.WriteString("\n")
	b.WriteString(progressCard)

	if s.OverdueCount > 0 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Overdue", a.renderOverdueList(innerW), cw))
	}
	return b.String()
}

func (a App) renderOverdueList(w int) string {
	t := theme.Active
	cur := a.cfg.General.Currency
	layout := a.cfg.General.DateFormat

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dueStyle := lipgloss.NewStyle().Foreground(t.Overdue).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	nameW := w - 14 - 16
	if nameW < 10 {
		nameW = 10
	}

	var lines []string
	for _, r := range a.report.Rows {
		if !r.Overdue {
			continue
		}
		lines = append(lines,
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.Record.Description, nameW)))+
				dueStyle.Render(fmt.Sprintf("%14s", cli.FormatDue(r, layout)))+
				amtStyle.Render(fmt.Sprintf("%16s", cli.FormatMoney(r.RemainingAmount, cur))))
	}
	return strings.Join(lines, "\n")
}
