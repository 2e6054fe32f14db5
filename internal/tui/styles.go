package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CBA6F7"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#89B4FA"))

	rxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	txStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(0, 1)

	treeRootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	treeEnumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))
)
