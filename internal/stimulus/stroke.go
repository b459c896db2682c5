package stimulus

import (
	"context"
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ip-twin.klederson.com/internal/config"
	"ip-twin.klederson.com/internal/transducer"
)

// SetpointMsg is sent via tea.Program.Send with a new input current in mA.
type SetpointMsg struct {
	Current float64
}

// Profile returns the input current at t seconds into a stroke.
type Profile func(t float64) float64

// Sine sweeps the full input range sinusoidally around mid-scale.
func Sine(period time.Duration) Profile {
	mid := (transducer.InputRange.Min + transducer.InputRange.Max) / 2
	amp := transducer.InputRange.Span() / 2
	p := period.Seconds()
	return func(t float64) float64 {
		return mid + amp*math.Sin(2*math.Pi*t/p)
	}
}

// Steps walks 0/25/50/75/100 % of span up and back down, holding each
// point for dwell, as in a five-point stroke check.
func Steps(dwell time.Duration) Profile {
	points := []float64{0, 0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25}
	d := dwell.Seconds()
	return func(t float64) float64 {
		idx := int(math.Floor(t/d)) % len(points)
		if idx < 0 {
			idx = 0
		}
		return transducer.InputRange.Min + points[idx]*transducer.InputRange.Span()
	}
}

// ProfileFor resolves a stroke name from settings. An empty name returns nil.
func ProfileFor(name string) (Profile, error) {
	switch name {
	case config.StrokeOff:
		return nil, nil
	case config.StrokeSine:
		return Sine(config.SinePeriod), nil
	case config.StrokeSteps:
		return Steps(config.StepDwell), nil
	}
	return nil, fmt.Errorf("unknown stroke profile %q", name)
}

// Stroker drives the setpoint from a profile in the background.
type Stroker struct {
	profile  Profile
	interval time.Duration
	program  *tea.Program
	cancel   context.CancelFunc
}

// NewStroker creates a stroker emitting every interval.
func NewStroker(profile Profile, interval time.Duration) *Stroker {
	return &Stroker{profile: profile, interval: interval}
}

// Start begins emitting SetpointMsg to p.
func (s *Stroker) Start(p *tea.Program) error {
	if s.profile == nil {
		return fmt.Errorf("stroker has no profile")
	}
	s.program = p

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *Stroker) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			msg := SetpointMsg{Current: s.profile(now.Sub(start).Seconds())}
			if s.program != nil {
				s.program.Send(msg)
			}
		}
	}
}

// Stop halts the stroker.
func (s *Stroker) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
