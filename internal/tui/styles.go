package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the picker uses.
const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorSky      lipgloss.Color = "#89dceb"
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAction  = colorSky
	colorValue   = colorYellow
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
)

var (
	tabStyle       = lipgloss.NewStyle().Foreground(colorAction).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorAction).Bold(true).Padding(0, 1)
	tabGapStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	subtitleStyle = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
	creditStyle   = lipgloss.NewStyle().Foreground(colorPeach)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAction).Underline(true)
	valueStyle    = lipgloss.NewStyle().Foreground(colorValue)
	warningStyle  = lipgloss.NewStyle().Foreground(colorPeach)

	itemStyle     = lipgloss.NewStyle().Foreground(colorAction)
	winnerStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	selectedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorAction).Bold(true)

	spinStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorSuccess).Foreground(colorSuccess).Padding(1, 4).Align(lipgloss.Center)
	statusStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
)
