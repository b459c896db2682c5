package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ip-twin.klederson.com/internal/transducer"
)

// FieldView is one labelled entry field as rendered by the app.
type FieldView struct {
	Label   string
	Input   string
	Focused bool
	Section string // Starts a new titled block when non-empty
}

// ControlView carries everything the control panel shows.
type ControlView struct {
	Current   float64 // mA
	Pressure  float64 // psi
	Target    float64 // psi, steady state at Current
	State     transducer.State
	Params    transducer.Params
	Fields    []FieldView
	Notice    string
	NoticeErr bool
}

// RenderControlPanel renders the left-hand instrument and calibration panel.
func RenderControlPanel(v ControlView, width, height int) string {
	innerW := width - 4
	if innerW < 24 {
		innerW = 24
	}

	title := StylePanelTitle.Render("I/P TRANSDUCER")
	sep := StyleHelp.Render(strings.Repeat("-", innerW))
	lines := []string{title, sep}

	barW := innerW - 16
	if barW < 8 {
		barW = 8
	}

	lines = append(lines,
		StyleLabel.Render("  Input    ")+StyleCurrent.Render(fmt.Sprintf("%6.2f mA", v.Current)),
		"  "+RenderGauge(v.Current, transducer.InputRange, barW, StyleCurrent),
		StyleLabel.Render("  Output   ")+StylePressure.Render(fmt.Sprintf("%6.2f psi", v.Pressure)),
		"  "+RenderGauge(v.Pressure, transducer.SafetyRange, barW, StylePressure),
		StyleLabel.Render("  Target   ")+StyleValue.Render(fmt.Sprintf("%6.2f psi", v.Target)),
		"",
		StyleLabel.Render("  Zero err ")+StyleValue.Render(fmt.Sprintf("%+.3f psi", v.State.ZeroError)),
		StyleLabel.Render("  Span err ")+StyleValue.Render(fmt.Sprintf("%+.2f %%", v.State.SpanError)),
		StyleLabel.Render("  Dynamics ")+StyleHelp.Render(fmt.Sprintf("tau %.2f s  noise %.3f psi", v.Params.TimeConstant, v.Params.NoiseStdDev)),
	)

	for _, f := range v.Fields {
		if f.Section != "" {
			lines = append(lines, "", StylePanelTitle.Render(f.Section))
		}
		label := fmt.Sprintf("  %-16s", f.Label)
		if f.Focused {
			lines = append(lines, StyleFieldFocused.Render(label)+f.Input)
		} else {
			lines = append(lines, StyleFieldBlurred.Render(label)+f.Input)
		}
	}

	lines = append(lines, "")
	if v.Notice != "" {
		if v.NoticeErr {
			lines = append(lines, "  "+StyleNoticeError.Render(v.Notice))
		} else {
			lines = append(lines, "  "+StyleNotice.Render(v.Notice))
		}
	}

	help := []string{
		"←/→ ±0.1 mA  shift ±1 mA",
		"home/end 4/20 mA",
		"enter apply  esc leave field",
	}
	for len(lines) < height-2-len(help) {
		lines = append(lines, "")
	}
	for _, h := range help {
		lines = append(lines, "  "+StyleHelp.Render(h))
	}

	content := strings.Join(lines, "\n")
	return StylePanelActive.Width(width - 2).Height(height - 2).Render(content)
}

// RenderGauge draws value as a filled bar across r.
func RenderGauge(value float64, r transducer.Range, width int, style lipgloss.Style) string {
	ratio := (value - r.Min) / r.Span()
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	filledPart := style.Render(strings.Repeat("|", filled))
	emptyPart := StyleHelp.Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}
