package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the control panel and chart horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, controlPanel, chartPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, controlPanel, chartPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
