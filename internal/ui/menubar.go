package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ip-twin.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, running bool, stroke string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"S", "tart"},
		{"P", "ause"},
		{"R", "eset"},
		{"Tab", " fields"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if running {
		status = StyleStatusRunning.Render("RUNNING")
	} else {
		status = StyleStatusStopped.Render("STOPPED")
	}

	source := "manual"
	if stroke != "" {
		source = "stroke:" + stroke
	}
	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Input: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + sourceInfo + " "

	gap := width - StyleMenuBar.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).MaxHeight(1).Render(left + padding + right)
}
