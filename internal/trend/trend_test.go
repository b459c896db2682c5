package trend

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestHistoryKeepsTrailingWindow(t *testing.T) {
	h := NewHistory(100)
	for i := 0; i < 250; i++ {
		h.Push(Sample{Elapsed: float64(i), Current: 4, Pressure: 3})
	}

	if h.Len() != 100 {
		t.Fatalf("Len = %d, want 100", h.Len())
	}
	vals := h.Values()
	if vals[0].Elapsed != 150 || vals[99].Elapsed != 249 {
		t.Errorf("window = [%v .. %v], want [150 .. 249]", vals[0].Elapsed, vals[99].Elapsed)
	}
	for i := 1; i < len(vals); i++ {
		if vals[i].Elapsed <= vals[i-1].Elapsed {
			t.Fatalf("values not chronological at %d", i)
		}
	}
}

func TestHistoryPartialAndReset(t *testing.T) {
	h := NewHistory(5)
	if h.Values() != nil {
		t.Error("empty history should return nil")
	}

	h.Push(Sample{Elapsed: 1})
	h.Push(Sample{Elapsed: 2})
	if vals := h.Values(); len(vals) != 2 || vals[1].Elapsed != 2 {
		t.Errorf("Values = %+v", vals)
	}

	h.Reset()
	if h.Len() != 0 || h.Cap() != 5 {
		t.Errorf("after Reset: Len = %d, Cap = %d", h.Len(), h.Cap())
	}
}

func TestColumns(t *testing.T) {
	s := []Sample{{Current: 4, Pressure: 3}, {Current: 20, Pressure: 15}}
	p, c := Pressures(s), Currents(s)
	if p[0] != 3 || p[1] != 15 || c[0] != 4 || c[1] != 20 {
		t.Errorf("Pressures = %v, Currents = %v", p, c)
	}
}

func TestTimebase(t *testing.T) {
	tb := NewTimebase()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := tb.Elapsed(t0.Add(time.Hour)); got != 0 {
		t.Errorf("Elapsed before start = %v, want 0", got)
	}
	tb.Restart(t0)
	if got := tb.Elapsed(t0.Add(2500 * time.Millisecond)); got != 2.5 {
		t.Errorf("Elapsed = %v, want 2.5", got)
	}
	tb.Clear()
	if got := tb.Elapsed(t0.Add(time.Second)); got != 0 {
		t.Errorf("Elapsed after Clear = %v, want 0", got)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		t, lo, hi float64
	}{
		{0, 0, 20},
		{12, 0, 20},
		{20, 0, 20},
		{35, 15, 35},
	}
	for _, tc := range cases {
		lo, hi := Window(tc.t, 20)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("Window(%v) = [%v, %v], want [%v, %v]", tc.t, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestScaleIndex(t *testing.T) {
	s := Scale{Lo: 0, Hi: 10, Cells: 11}
	cases := map[float64]int{-5: 0, 0: 0, 4.9: 5, 10: 10, 99: 10}
	for v, want := range cases {
		if got := s.Index(v); got != want {
			t.Errorf("Index(%v) = %d, want %d", v, got, want)
		}
	}
	if got := s.Value(5); got != 5 {
		t.Errorf("Value(5) = %v, want 5", got)
	}
	if got := (Scale{Lo: 1, Hi: 1, Cells: 10}).Index(3); got != 0 {
		t.Errorf("degenerate Index = %d, want 0", got)
	}
}

func TestYRange(t *testing.T) {
	lo, hi := YRange(nil, 2)
	if lo != 0 || hi != 20 {
		t.Errorf("empty YRange = [%v, %v]", lo, hi)
	}

	lo, hi = YRange([]Sample{{Current: 4, Pressure: 3}, {Current: 20, Pressure: 15}}, 2)
	if lo >= 3 || hi <= 20 {
		t.Errorf("YRange = [%v, %v], want to cover [3, 20]", lo, hi)
	}

	lo, hi = YRange([]Sample{{Current: 5, Pressure: 5}}, 2)
	if hi-lo < 2 {
		t.Errorf("flat YRange span = %v, want >= 2", hi-lo)
	}
}

func TestRenderDimensions(t *testing.T) {
	samples := []Sample{
		{Elapsed: 0, Current: 4, Pressure: 3},
		{Elapsed: 5, Current: 12, Pressure: 8.5},
		{Elapsed: 10, Current: 20, Pressure: 14.9},
	}
	out := Render(60, 12, samples, 20)

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
	if !strings.ContainsRune(out, PressureMark) || !strings.ContainsRune(out, CurrentMark) {
		t.Error("chart is missing a trace")
	}
	if !strings.Contains(lines[11], "0s") || !strings.Contains(lines[11], "20s") {
		t.Errorf("time axis = %q", lines[11])
	}
}

func TestRenderTooSmall(t *testing.T) {
	if out := Render(5, 2, nil, 20); out != "" {
		t.Errorf("Render on tiny area = %q, want empty", out)
	}
}
