package components

import (
	"fmt"

	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForSaved returns red/orange/yellow/green as more of the total is saved.
func ColorForSaved(frac float64) lipgloss.Color {
	t := theme.Active
	switch {
	case frac >= 0.75:
		return t.Saved
	case frac >= 0.5:
		return t.DueSoon
	case frac >= 0.25:
		return t.Warn
	default:
		return t.Overdue
	}
}

// SavingsBar renders a labeled bar for a 0-1 saved fraction.
func SavingsBar(label string, frac float64, labelW, barWidth int) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	color := ColorForSaved(frac)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	out := ""
	if label != "" {
		out = labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + spaceStyle.Render(" ")
	}
	return out +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", frac*100))
}
