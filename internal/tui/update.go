package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/ifmon/internal/monitor"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.dispatch(monitor.ActionUp)
		case tea.MouseButtonWheelDown:
			m.dispatch(monitor.ActionDown)
		}

	case tickMsg:
		if msg.seq != m.tickSeq {
			return m, nil
		}
		// Catch up at most one interval per message.
		if now := m.now(); m.session.Due(now) {
			m.session.Tick(m.ctx, now)
			m.clampScroll()
		}
		m.tickSeq++
		return m, scheduleTick(m.tickSeq, m.session.Remaining(m.now()))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return m, tea.Interrupt
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Sort):
		m.session.CycleSort()
	case key.Matches(msg, m.keys.Rescan):
		m.session.Rescan(m.ctx)
		m.clampScroll()
	case key.Matches(msg, m.keys.Up):
		m.dispatch(monitor.ActionUp)
	case key.Matches(msg, m.keys.Down):
		m.dispatch(monitor.ActionDown)
	case key.Matches(msg, m.keys.Open):
		m.dispatch(monitor.ActionOpen)
	case key.Matches(msg, m.keys.Close):
		m.dispatch(monitor.ActionClose)
	}
	return m, nil
}

func (m Model) dispatch(a monitor.Action) {
	m.session.Dispatch(a, len(m.detailLines()), m.visibleDetailLines())
}

func (m Model) clampScroll() {
	if m.session.Nav().PopupOpen() {
		m.session.ClampScroll(len(m.detailLines()), m.visibleDetailLines())
	}
}
