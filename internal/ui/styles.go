package ui

import "github.com/charmbracelet/lipgloss"

// Lilac palette
var (
	ColorLilac      = lipgloss.Color("#C8A2C8")
	ColorDeepLilac  = lipgloss.Color("#8E6C8A")
	ColorNight      = lipgloss.Color("#2A1F33")
	ColorText       = lipgloss.Color("#F2ECF5")
	ColorMuted      = lipgloss.Color("#A89BB0")
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorLevel      = lipgloss.Color("#7FD77F")
	ColorBorderNorm = lipgloss.Color("#8E6C8A")
	ColorError      = lipgloss.Color("#FF3300")
	ColorWarning    = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorNight).
			Foreground(ColorLilac).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorLilac).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorNight).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusLevel = lipgloss.NewStyle().
				Foreground(ColorLevel).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorLilac).
			Bold(true).
			Padding(0, 1)

	StyleModeItem = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleModeSelected = lipgloss.NewStyle().
				Foreground(ColorNight).
				Background(ColorLilac).
				Bold(true)

	StyleInput = lipgloss.NewStyle().
			Foreground(ColorText).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDeepLilac).
			Padding(0, 1)

	StyleResult = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleToast = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorError).
			Padding(0, 1)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
