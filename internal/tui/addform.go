package tui

import (
	"strings"

	"github.com/theirongolddev/dledger/internal/calendar"
	"github.com/theirongolddev/dledger/internal/ledger"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// addValues holds the raw text of the add form. Nothing is validated:
// a bad amount becomes zero and a bad date renders as invalid.
type addValues struct {
	Description string
	Amount      string
	DueDate     string
}

func newAddForm(vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Rent").
				Value(&vals.Description),
			huh.NewInput().
				Title("Amount").
				Placeholder("1200.00").
				Value(&vals.Amount),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD").
				Placeholder(calendar.DateLayout).
				Value(&vals.DueDate),
		).Title("◈ New debt"),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.addVals = &addValues{}
	a.addForm = newAddForm(a.addVals)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(a.contentWidth()).WithHeight(a.height)
	}
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return a.closeAddForm()
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		v := a.addVals
		a.addForm = nil
		a.addVals = nil
		a.busy = true
		return a, dispatchCmd(a.ledger, ledger.AddDebt{
			Description: strings.TrimSpace(v.Description),
			Amount:      ledger.ParseAmount(v.Amount),
			DueDate:     strings.TrimSpace(v.DueDate),
		})
	}

	if a.addForm.State == huh.StateAborted {
		return a.closeAddForm()
	}

	return a, cmd
}

func (a App) closeAddForm() (tea.Model, tea.Cmd) {
	a.addForm = nil
	a.addVals = nil
	a.status = "add cancelled"
	a.statusErr = false
	return a, nil
}

func (a App) viewAddForm() string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.addForm.View(),
		lipgloss.WithWhitespaceBackground(t.Background))
}
