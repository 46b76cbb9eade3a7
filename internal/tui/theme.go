package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorChecked = colorGreen
	colorMuted   = colorOverlay1
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	tableBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true)

	cellStyle    = lipgloss.NewStyle().Foreground(colorText)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Background(colorSurface0).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(colorChecked).Bold(true)
	yearStyle    = lipgloss.NewStyle().Foreground(colorPeach)

	loadingStyle = lipgloss.NewStyle().Foreground(colorYellow)
	emptyStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	navButtonStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorBlue).
			Padding(0, 1)

	navDisabledStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Background(colorSurface0).
				Padding(0, 1)

	pageIndicatorStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	selectedBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMauve).
				Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(colorText)
	selectedIDStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)

	helpStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	warnStyle = lipgloss.NewStyle().Foreground(colorRed)
)
