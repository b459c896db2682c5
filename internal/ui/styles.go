package ui

import "github.com/charmbracelet/lipgloss"

// Instrument panel palette
var (
	ColorBright       = lipgloss.Color("#E0F2FF")
	ColorAccent       = lipgloss.Color("#3FA9F5")
	ColorMid          = lipgloss.Color("#7FA7C4")
	ColorDim          = lipgloss.Color("#4A5A66")
	ColorBarBg        = lipgloss.Color("#0B2233")
	ColorCurrent      = lipgloss.Color("#FF5F5F")
	ColorBorderBright = lipgloss.Color("#3FA9F5")
	ColorBorderNorm   = lipgloss.Color("#2B5D80")
	ColorError        = lipgloss.Color("#FF3300")
	ColorWarning      = lipgloss.Color("#FFAA00")
	ColorOK           = lipgloss.Color("#33DD77")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorMid).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorOK).
				Bold(true)

	StyleStatusStopped = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StylePressure = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleCurrent = lipgloss.NewStyle().
			Foreground(ColorCurrent).
			Bold(true)

	StyleFieldFocused = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StyleFieldBlurred = lipgloss.NewStyle().
				Foreground(ColorMid)

	StyleNotice = lipgloss.NewStyle().
			Foreground(ColorOK)

	StyleNoticeError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)
)
