package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/ifmon/internal/monitor"
)

// Model represents the TUI application state. All session mutation
// happens in Update; View only reads.
type Model struct {
	ctx      context.Context
	session  *monitor.Session
	hostname string
	now      func() time.Time

	keys keyMap
	help help.Model

	width  int
	height int

	// only the tick carrying the current sequence is honoured
	tickSeq int
}

// Message types for Bubbletea update loop
type tickMsg struct {
	seq int
}

// keyMap holds every key binding
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Close     key.Binding
	Sort      key.Binding
	Rescan    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Sort, k.Rescan, k.Up, k.Down, k.Open, k.Close}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Close},
		{k.Sort, k.Rescan, k.Quit, k.Interrupt},
	}
}

// NewModel creates a new TUI model around a session whose first tick is due now.
func NewModel(ctx context.Context, session *monitor.Session, hostname string) Model {
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpDescStyle

	return Model{
		ctx:      ctx,
		session:  session,
		hostname: hostname,
		now:      time.Now,
		keys:     defaultKeyMap(),
		help:     h,
	}
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return scheduleTick(m.tickSeq, m.session.Remaining(m.now()))
}
