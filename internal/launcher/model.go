package launcher

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aictl/internal/config"
	"aictl/internal/state"
)

// screen identifies which view the launcher TUI is showing.
type screen int

const (
	screenMenu screen = iota
	screenHelp
	screenStatus
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dangerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// keyMap holds the cursor/menu keybindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "e", "esc", "ctrl+c")),
}

// Model is the full-screen launcher menu. It never execs by itself: when the
// user picks an entry the program quits and the caller reads Choice(), so
// the terminal is restored before process replacement.
type Model struct {
	dispatcher *Dispatcher

	cursor  int
	screen  screen
	message string
	width   int
	height  int

	choice *config.LaunchEntry
}

// NewModel builds the menu over a validated catalog.
func NewModel(d *Dispatcher) *Model {
	return &Model{dispatcher: d}
}

// Choice returns the entry picked by the user, or nil if they exited.
func (m *Model) Choice() *config.LaunchEntry {
	return m.choice
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Help and status screens: any key returns to the menu.
		if m.screen != screenMenu {
			m.screen = screenMenu
			return m, nil
		}

		entries := m.dispatcher.Catalog.Entries()
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, keys.Select):
			e := entries[m.cursor]
			m.choice = &e
			return m, tea.Quit

		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		}

		return m.handleInput(msg.String())
	}

	return m, nil
}

// handleInput routes a typed key through the same resolution the plain loop
// uses, so both frontends agree on what every key means.
func (m *Model) handleInput(in string) (tea.Model, tea.Cmd) {
	cmd := m.dispatcher.Catalog.Resolve(in)
	switch cmd.Action {
	case ActionExit:
		return m, tea.Quit

	case ActionHelp:
		m.screen = screenHelp

	case ActionStatus:
		m.screen = screenStatus

	case ActionClear:
		if err := state.ClearLastSelection(m.dispatcher.LastPath); err != nil {
			m.message = fmt.Sprintf("could not clear last selection: %v", err)
		} else {
			m.message = "last selection cleared"
		}

	case ActionRepeat:
		entry, err := m.dispatcher.Repeat()
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.choice = &entry
		return m, tea.Quit

	case ActionDispatch:
		e := cmd.Entry
		m.choice = &e
		return m, tea.Quit

	default:
		m.message = "unrecognized input, press h for help"
	}
	return m, nil
}

// View renders the current screen.
func (m *Model) View() string {
	switch m.screen {
	case screenHelp:
		return helpText(m.dispatcher.Catalog) + dimStyle.Render("\npress any key to return")
	case screenStatus:
		return StatusText(m.dispatcher.Catalog, m.dispatcher.LastPath, m.dispatcher.LookPath) +
			dimStyle.Render("\npress any key to return")
	}

	s := titleStyle.Render("AI launcher") + "\n\n"
	for i, e := range m.dispatcher.Catalog.Entries() {
		row := fmt.Sprintf("%2d  %s", e.Index, e.Name)
		if e.QuickKey != "" {
			row += dimStyle.Render(fmt.Sprintf("  (%s)", e.QuickKey))
		}
		if e.Warn == "danger" {
			row += dangerStyle.Render("  !!")
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			row = selectedStyle.Render(row)
		}
		s += cursor + row + "\n"
	}

	if idx, ok := state.LoadLastSelection(m.dispatcher.LastPath); ok {
		if e, found := m.dispatcher.Catalog.Entry(idx); found {
			s += dimStyle.Render(fmt.Sprintf("\n 0  repeat last: %s\n", e.Name))
		}
	}

	if m.message != "" {
		s += "\n" + messageStyle.Render(m.message) + "\n"
	}
	s += dimStyle.Render("\n↑/↓ + enter, number, or quick key · h help · s status · c clear · q quit")
	return s
}
