package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"

	"ip-twin.klederson.com/internal/transducer"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, pressures []float64, capacity int, state transducer.State) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[RUNNING]")
	} else {
		status = StyleStatusStopped.Render("[STOPPED]")
	}

	mean, sd := WindowStats(pressures)
	info := fmt.Sprintf(" Samples: %d/%d  Mean: %.3f psi  SD: %.3f  ZeroAdj: %+.3f psi  SpanAdj: x%.4f",
		len(pressures), capacity, mean, sd, state.ZeroAdjust, state.SpanAdjust)

	content := status + StyleStatusBar.Foreground(ColorMid).Render(info)

	gap := width - StyleStatusBar.GetHorizontalFrameSize() - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).MaxHeight(1).Render(content + padding)
}

// WindowStats returns the mean and sample standard deviation of vals.
// Fewer than two values yield a zero deviation.
func WindowStats(vals []float64) (mean, sd float64) {
	switch len(vals) {
	case 0:
		return 0, 0
	case 1:
		return vals[0], 0
	}
	return stat.MeanStdDev(vals, nil)
}
