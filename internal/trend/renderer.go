package trend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ip-twin.klederson.com/internal/config"
)

var (
	colorPressure = lipgloss.Color("#3FA9F5")
	colorCurrent  = lipgloss.Color("#FF5F5F")
	colorAxis     = lipgloss.Color("#8A8A8A")
	colorGrid     = lipgloss.Color("#3A3A3A")

	stylePressure = lipgloss.NewStyle().Foreground(colorPressure).Bold(true)
	styleCurrent  = lipgloss.NewStyle().Foreground(colorCurrent)
	styleAxis     = lipgloss.NewStyle().Foreground(colorAxis)
	styleGrid     = lipgloss.NewStyle().Foreground(colorGrid)
)

const (
	axisWidth    = 7 // "%5.1f ┤"
	minValueSpan = 2.0

	PressureMark = '*'
	CurrentMark  = '-'
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellGrid
	cellCurrent
	cellPressure
)

// Render draws the pressure and current traces of samples on a shared,
// auto-scaled y axis over a trailing window of span seconds. The result is
// exactly height lines; the last line is the time axis.
func Render(width, height int, samples []Sample, span float64) string {
	if width < axisWidth+10 || height < 4 {
		return ""
	}

	plotW := width - axisWidth
	plotH := height - 1

	latest := 0.0
	if len(samples) > 0 {
		latest = samples[len(samples)-1].Elapsed
	}
	tLo, tHi := Window(latest, span)
	vLo, vHi := YRange(samples, minValueSpan)

	xs := Scale{Lo: tLo, Hi: tHi, Cells: plotW}
	ys := Scale{Lo: vLo, Hi: vHi, Cells: plotH}

	grid := make([][]cellKind, plotH)
	for r := range grid {
		grid[r] = make([]cellKind, plotW)
	}
	gridRows := gridRowSet(plotH)
	for r := range gridRows {
		for c := 0; c < plotW; c += 2 {
			grid[r][c] = cellGrid
		}
	}

	// Pressure is plotted last so it wins shared cells.
	plot := func(kind cellKind, value func(Sample) float64) {
		for _, s := range samples {
			if s.Elapsed < tLo || s.Elapsed > tHi {
				continue
			}
			col := xs.Index(s.Elapsed)
			row := plotH - 1 - ys.Index(value(s))
			grid[row][col] = kind
		}
	}
	plot(cellCurrent, func(s Sample) float64 { return s.Current })
	plot(cellPressure, func(s Sample) float64 { return s.Pressure })

	var sb strings.Builder
	for r := 0; r < plotH; r++ {
		if gridRows[r] {
			sb.WriteString(styleAxis.Render(fmt.Sprintf("%5.1f ┤", ys.Value(plotH-1-r))))
		} else {
			sb.WriteString(styleAxis.Render("      │"))
		}
		for c := 0; c < plotW; c++ {
			sb.WriteString(renderCell(grid[r][c]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(renderTimeAxis(plotW, tLo, tHi))

	return sb.String()
}

func gridRowSet(plotH int) map[int]bool {
	rows := make(map[int]bool, config.GridLines+1)
	for i := 0; i <= config.GridLines; i++ {
		rows[i*(plotH-1)/config.GridLines] = true
	}
	return rows
}

func renderCell(k cellKind) string {
	switch k {
	case cellPressure:
		return stylePressure.Render(string(PressureMark))
	case cellCurrent:
		return styleCurrent.Render(string(CurrentMark))
	case cellGrid:
		return styleGrid.Render(".")
	default:
		return " "
	}
}

func renderTimeAxis(plotW int, lo, hi float64) string {
	left := fmt.Sprintf("%.0fs", lo)
	right := fmt.Sprintf("%.0fs", hi)
	gap := plotW - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return styleAxis.Render("      └" + left + strings.Repeat("─", gap) + right)
}

// RenderLegend produces the chart legend line.
func RenderLegend(width int) string {
	legend := stylePressure.Render(string(PressureMark)+" Pressure (psi)") +
		"   " +
		styleCurrent.Render(string(CurrentMark)+" Current (mA)")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
