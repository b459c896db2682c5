package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"ip-twin.klederson.com/internal/transducer"
)

func TestWindowStats(t *testing.T) {
	cases := []struct {
		vals     []float64
		mean, sd float64
	}{
		{nil, 0, 0},
		{[]float64{7.5}, 7.5, 0},
		{[]float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, math.Sqrt(32.0 / 7.0)},
	}
	for _, tc := range cases {
		mean, sd := WindowStats(tc.vals)
		if math.Abs(mean-tc.mean) > 1e-12 || math.Abs(sd-tc.sd) > 1e-12 {
			t.Errorf("WindowStats(%v) = %v, %v; want %v, %v", tc.vals, mean, sd, tc.mean, tc.sd)
		}
	}
}

func TestRenderGauge(t *testing.T) {
	r := transducer.Range{Min: 2, Max: 16}
	cases := []struct {
		value  float64
		filled int
	}{
		{2, 0},
		{9, 10},
		{16, 20},
		{99, 20},
		{-5, 0},
	}
	for _, tc := range cases {
		g := RenderGauge(tc.value, r, 20, StylePressure)
		if w := lipgloss.Width(g); w != 22 {
			t.Errorf("gauge(%v) width = %d, want 22", tc.value, w)
		}
		if n := strings.Count(g, "|"); n != tc.filled {
			t.Errorf("gauge(%v) filled = %d, want %d", tc.value, n, tc.filled)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	state := transducer.State{ZeroAdjust: -0.25, SpanAdjust: 1.05}
	out := RenderStatusBar(140, true, []float64{3, 3.1, 2.9}, 100, state)

	for _, want := range []string{"[RUNNING]", "Samples: 3/100", "ZeroAdj: -0.250", "SpanAdj: x1.0500"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q: %q", want, out)
		}
	}
	if h, w := lipgloss.Height(out), lipgloss.Width(out); h != 1 || w != 140 {
		t.Errorf("status bar is %dx%d, want one line of 140", w, h)
	}
	narrow := RenderStatusBar(80, false, nil, 100, state)
	if !strings.Contains(narrow, "[STOPPED]") {
		t.Error("stopped status missing")
	}
	if h := lipgloss.Height(narrow); h != 1 {
		t.Errorf("narrow status bar height = %d, want 1", h)
	}
}

func TestBarsFillExactlyOneLine(t *testing.T) {
	for _, width := range []int{110, 140, 200} {
		menu := RenderMenuBar(width, true, "steps")
		if h, w := lipgloss.Height(menu), lipgloss.Width(menu); h != 1 || w != width {
			t.Errorf("menu bar at %d is %dx%d, want one line of %d", width, w, h, width)
		}
		status := RenderStatusBar(width+40, false, []float64{3}, 100, transducer.State{SpanAdjust: 1})
		if h, w := lipgloss.Height(status), lipgloss.Width(status); h != 1 || w != width+40 {
			t.Errorf("status bar at %d is %dx%d, want one line of %d", width+40, w, h, width+40)
		}
	}
	if h := lipgloss.Height(RenderMenuBar(40, false, "")); h != 1 {
		t.Errorf("cramped menu bar height = %d, want 1", h)
	}
}

func TestRenderMenuBarShowsInputSource(t *testing.T) {
	if out := RenderMenuBar(120, false, ""); !strings.Contains(out, "Input: manual") {
		t.Errorf("menu bar = %q", out)
	}
	if out := RenderMenuBar(120, true, "sine"); !strings.Contains(out, "stroke:sine") || !strings.Contains(out, "RUNNING") {
		t.Errorf("menu bar = %q", out)
	}
}

func TestRenderControlPanel(t *testing.T) {
	v := ControlView{
		Current:  12,
		Pressure: 9,
		Target:   9,
		Params:   transducer.DefaultParams(),
		Fields: []FieldView{
			{Label: "Current (mA)", Input: "> 12.00"},
			{Label: "Zero @4mA", Input: "> 3.0", Focused: true, Section: "CALIBRATION"},
		},
		Notice:    `"abc" is not a number`,
		NoticeErr: true,
	}
	out := RenderControlPanel(v, 44, 36)

	for _, want := range []string{"I/P TRANSDUCER", "12.00 mA", "9.00 psi", "CALIBRATION", "Zero @4mA", "is not a number", "tau 0.50 s"} {
		if !strings.Contains(out, want) {
			t.Errorf("control panel missing %q", want)
		}
	}
	if h := lipgloss.Height(out); h != 36 {
		t.Errorf("panel height = %d, want 36", h)
	}
}
