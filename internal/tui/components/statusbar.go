package components

import (
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. A non-empty message is
// shown on the right, in the warning color when isErr is set.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	msgStyle := base
	if isErr {
		msgStyle = msgStyle.Foreground(t.Overdue).Bold(true)
	}

	left := base.Render(" " + hints)
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	gap := lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("")

	return lipgloss.NewStyle().MaxWidth(width).Render(left + gap + right)
}
