package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/ifmon/internal/model"
	"github.com/rusenback/ifmon/internal/monitor"
)

const valueWidth = 12

var columnTitles = []string{"Total", "Total RX", "Total TX", "RX/s", "TX/s"}

// View renders the TUI interface
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	helpLine := m.help.View(m.keys)

	tableHeight := m.height - lipgloss.Height(header) - lipgloss.Height(helpLine)
	table := m.renderTable(tableHeight)

	screen := lipgloss.JoinVertical(lipgloss.Left, header, table, helpLine)
	if m.session.Nav().PopupOpen() {
		popup := m.renderPopup()
		pw, ph := lipgloss.Width(popup), lipgloss.Height(popup)
		screen = overlay(screen, popup, (m.width-pw)/2, (m.height-ph)/2)
	}
	return screen
}

func (m Model) renderHeader() string {
	s := m.session
	target := s.Filter()
	if target == "" {
		target = "(all)"
	}
	line := fmt.Sprintf("ifmon monitor | sort:%s | unit:%s | interval:%ds %s",
		s.Sort().Label(), s.Unit(), int(s.Interval().Seconds()), target)
	return titleStyle.Render(truncate(line, m.width))
}

// renderTable draws the cached rows, scrolled so the selection stays visible.
func (m Model) renderTable(height int) string {
	s := m.session
	nameWidth := s.NameWidth()

	cols := []string{padRight("IFACE", nameWidth)}
	for _, t := range columnTitles {
		cols = append(cols, padLeft(t, valueWidth))
	}
	lines := []string{headerStyle.Render(truncate(strings.Join(cols, " "), m.width))}

	rows := s.Rows()
	avail := height - 1
	if avail < 1 {
		avail = 1
	}
	selected := s.Nav().Selected()
	offset := 0
	if selected >= avail {
		offset = selected - avail + 1
	}

	for i := offset; i < len(rows) && i < offset+avail; i++ {
		cells := rowCells(rows[i], nameWidth, s.Unit())
		if i == selected {
			lines = append(lines, selectedStyle.Render(truncate(strings.Join(cells, " "), m.width)))
			continue
		}
		cells[4] = rxStyle.Render(cells[4])
		cells[5] = txStyle.Render(cells[5])
		lines = append(lines, truncate(strings.Join(cells, " "), m.width))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func rowCells(r model.Row, nameWidth int, unit monitor.Unit) []string {
	return []string{
		padRight(truncate(r.DisplayName, nameWidth), nameWidth),
		padLeft(monitor.FormatTotal(r.Total, unit), valueWidth),
		padLeft(monitor.FormatTotal(r.TotalRx, unit), valueWidth),
		padLeft(monitor.FormatTotal(r.TotalTx, unit), valueWidth),
		padLeft(monitor.FormatRate(r.RxRate, unit), valueWidth),
		padLeft(monitor.FormatRate(r.TxRate, unit), valueWidth),
	}
}

// renderPopup draws the visible window of the detail tree inside a fixed box.
func (m Model) renderPopup() string {
	width := m.detailWidth()
	visible := m.visibleDetailLines()

	body := m.detailLines()
	scroll := m.session.Nav().Scroll()
	if scroll > len(body) {
		scroll = len(body)
	}
	body = body[scroll:]

	lines := make([]string, visible)
	for i := range lines {
		if i < len(body) {
			lines[i] = truncate(body[i], width)
		}
	}
	return popupStyle.Width(width + popupStyle.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}
