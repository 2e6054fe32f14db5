package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to a maximum display width
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return ansi.Truncate(s, max, "")
	}
	return ansi.Truncate(s, max, "...")
}

// padRight pads s with spaces up to width display cells.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft right-aligns s in width display cells.
func padLeft(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// overlay draws fg on top of bg with its top-left corner at (x, y).
// Both are newline-separated blocks that may contain ANSI sequences.
func overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		base := bgLines[row]
		left := padRight(ansi.Truncate(base, x, ""), x)
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

// popupSize is the outer size of the detail popup: 66% x 60% of the screen.
func popupSize(width, height int) (int, int) {
	return width * 66 / 100, height * 60 / 100
}

// visibleDetailLines is how many body lines fit inside the popup.
func (m Model) visibleDetailLines() int {
	_, h := popupSize(m.width, m.height)
	visible := h - popupStyle.GetVerticalFrameSize()
	if visible < 1 {
		visible = 1
	}
	return visible
}

// detailWidth is the usable text width inside the popup.
func (m Model) detailWidth() int {
	w, _ := popupSize(m.width, m.height)
	inner := w - popupStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return inner
}
