package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dledger/internal/cli"
	"github.com/theirongolddev/dledger/internal/ledger"
	"github.com/theirongolddev/dledger/internal/tui/components"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// debtColumns are the fixed-width columns; Description takes the rest.
var debtColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Description", Width: 24},
	{Title: "Amount", Width: 14},
	{Title: "Due", Width: 12},
	{Title: "Days", Width: 8},
	{Title: "Per Day", Width: 14},
	{Title: "Saved", Width: 14},
}

func newDebtTable() table.Model {
	t := theme.Active

	tbl := table.New(
		table.WithColumns(debtColumns),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(t.Accent).
		Background(t.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary).Background(t.Surface)
	s.Selected = s.Selected.
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true)
	tbl.SetStyles(s)
	return tbl
}

// resizeTable stretches the description column to the content width.
func (a *App) resizeTable() {
	cw := components.CardInnerWidth(a.contentWidth())

	fixed := 0
	for i, c := range debtColumns {
		if i != 1 {
			fixed += c.Width
		}
	}
	// Each column carries one cell of padding on both sides
	descW := cw - fixed - 2*len(debtColumns)
	if descW < 12 {
		descW = 12
	}

	cols := make([]table.Column, len(debtColumns))
	copy(cols, debtColumns)
	cols[1].Width = descW
	a.table.SetColumns(cols)
	a.table.SetWidth(cw)

	h := a.height - 10
	if h < 3 {
		h = 3
	}
	a.table.SetHeight(h)
}

// syncTable rebuilds table rows from the current report.
func (a *App) syncTable() {
	cur := a.cfg.General.Currency
	layout := a.cfg.General.DateFormat

	rows := make([]table.Row, 0, len(a.report.Rows))
	for _, r := range a.report.Rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Index+1),
			r.Record.Description,
			cli.FormatMoney(r.Record.Amount, cur),
			cli.FormatDue(r, layout),
			cli.FormatRemaining(r),
			cli.FormatPerDay(r, cur),
			cli.FormatMoney(r.Record.Saved, cur),
		})
	}
	a.table.SetRows(rows)

	if c := a.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		a.table.SetCursor(len(rows) - 1)
	}
}

func (a App) updateDebtsKey(key string) (tea.Model, tea.Cmd) {
	n := len(a.report.Rows)

	switch key {
	case "j", "down":
		a.table.MoveDown(1)
	case "k", "up":
		a.table.MoveUp(1)
	case "g", "home":
		a.table.GotoTop()
	case "G", "end":
		a.table.GotoBottom()
	case "e", "enter":
		if n == 0 || a.busy {
			return a, nil
		}
		row := a.report.Rows[a.table.Cursor()]
		ti := textinput.New()
		ti.Prompt = "saved: "
		ti.SetValue(row.Record.Saved.String())
		ti.CharLimit = 20
		ti.Focus()
		a.editInput = ti
		a.editRow = a.table.Cursor()
		a.editing = true
		return a, textinput.Blink
	case "x", "delete":
		if n == 0 || a.busy {
			return a, nil
		}
		a.busy = true
		return a, dispatchCmd(a.ledger, ledger.DeleteDebt{Index: a.table.Cursor()})
	}
	return a, nil
}

// updateEdit handles keys while the saved-amount editor is open.
func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = false
		a.editInput.Blur()
		return a, nil
	case "enter":
		a.editing = false
		a.editInput.Blur()
		saved := ledger.ParseAmount(a.editInput.Value())
		a.busy = true
		return a, dispatchCmd(a.ledger, ledger.CommitSaved{Index: a.editRow, Saved: saved})
	}

	var cmd tea.Cmd
	a.editInput, cmd = a.editInput.Update(msg)
	return a, cmd
}

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active

	if len(a.report.Rows) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No debts yet. Press [a] to add one.")
		return components.ContentCard("Debts", empty, cw)
	}

	var b strings.Builder
	b.WriteString(a.table.View())

	if a.editing && a.editRow < len(a.report.Rows) {
		row := a.report.Rows[a.editRow]
		label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render(fmt.Sprintf("#%d %s  ", a.editRow+1, truncStr(row.Record.Description, 30)))
		b.WriteString("\n\n")
		b.WriteString(label + a.editInput.View())
	}

	title := fmt.Sprintf("Debts (%d)", len(a.report.Rows))
	if od := a.report.Summary.OverdueCount; od > 0 {
		title += fmt.Sprintf(" · %d overdue", od)
	}
	return components.ContentCard(title, b.String(), cw)
}
