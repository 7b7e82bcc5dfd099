// Package tui provides the interactive Bubble Tea dashboard for dledger.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dledger/internal/config"
	"github.com/theirongolddev/dledger/internal/ledger"
	"github.com/theirongolddev/dledger/internal/model"
	"github.com/theirongolddev/dledger/internal/tui/components"
	"github.com/theirongolddev/dledger/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ReportMsg carries the result of a render cycle or a dispatched command.
type ReportMsg struct {
	Report model.Report
	Action string
	Err    error
}

// App is the root Bubble Tea model.
type App struct {
	ledger *ledger.Ledger
	cfg    config.Config

	// Data
	report model.Report
	loaded bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	busy      bool // a ledger command is in flight
	status    string
	statusErr bool

	// Debts tab
	table     table.Model
	editing   bool
	editRow   int
	editInput textinput.Model

	// Add form (huh)
	addForm *huh.Form
	addVals *addValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 160
	minContentHeight = 5
)

const (
	tabDebts = iota
	tabSummary
	tabCalendar
)

// NewApp creates a new TUI app model over l.
func NewApp(l *ledger.Ledger, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ledger:  l,
		cfg:     cfg,
		table:   newDebtTable(),
		spinner: sp,
		busy:    true, // Init issues the first render
	}
}

// Init implements tea.Model. The initial render happens once, here.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		viewCmd(a.ledger, ""),
		a.spinner.Tick,
	)
}

// viewCmd runs a render cycle in the background.
func viewCmd(l *ledger.Ledger, action string) tea.Cmd {
	return func() tea.Msg {
		r, err := l.View()
		return ReportMsg{Report: r, Action: action, Err: err}
	}
}

// dispatchCmd applies a ledger command and re-renders.
func dispatchCmd(l *ledger.Ledger, cmd ledger.Command) tea.Cmd {
	return func() tea.Msg {
		r, err := l.Dispatch(cmd)
		return ReportMsg{Report: r, Action: cmd.String(), Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeTable()
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.contentWidth()).WithHeight(msg.Height)
		}
		return a, nil

	case ReportMsg:
		a.busy = false
		if msg.Err != nil {
			a.status = msg.Err.Error()
			a.statusErr = true
			a.loaded = true
			return a, nil
		}
		a.report = msg.Report
		a.loaded = true
		a.statusErr = false
		a.status = msg.Action
		a.syncTable()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.addForm != nil || a.editing {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabDebts {
				a.table.MoveUp(1)
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabDebts {
				a.table.MoveDown(1)
			}
		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the add form (cursor blinks, etc.)
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.editing {
		var cmd tea.Cmd
		a.editInput, cmd = a.editInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// The add form and the saved-amount editor own the keyboard while open.
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.editing {
		return a.updateEdit(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		if a.busy {
			return a, nil
		}
		a.busy = true
		return a, viewCmd(a.ledger, "reloaded")
	case "a":
		if a.busy {
			return a, nil
		}
		return a.openAddForm()
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	if a.activeTab == tabDebts {
		return a.updateDebtsKey(key)
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.addForm != nil {
		return a.viewAddForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  dledger needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ dledger"))
	b.WriteString(subtitleStyle.Render(" · Debt Ledger"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading debts..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move selection"},
			{"g G", "First / Last debt"},
		}},
		{"Debts", []struct{ key, desc string }{
			{"a", "Add a debt"},
			{"e Enter", "Edit saved amount"},
			{"x Del", "Delete selected debt"},
			{"Esc", "Cancel edit"},
		}},
		{"General", []struct{ key, desc string }{
			{"r", "Reload from store"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch {
	case a.editing:
		return "[enter]commit  [esc]cancel"
	case a.activeTab == tabDebts:
		return "[a]dd  [e]dit saved  [x]delete  [?]help  [q]uit"
	default:
		return "[a]dd  [r]eload  [?]help  [q]uit"
	}
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	message := a.status
	if a.busy {
		message = "working..."
	} else if message == "" {
		message = "policy: " + a.ledger.Counter().Name()
	}
	statusBar := components.RenderStatusBar(w, a.statusHints(), message, a.statusErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDebts:
		content = a.renderDebtsTab(cw)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabCalendar:
		content = a.renderCalendarTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar, with a one-column separator.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1
	}
	return -1
}
