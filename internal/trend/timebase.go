package trend

import (
	"math"
	"time"
)

// Timebase measures run time for the chart's x axis.
type Timebase struct {
	StartTime time.Time
	started   bool
}

// NewTimebase creates a timebase that has not been started; Elapsed reports
// zero until Restart is called.
func NewTimebase() *Timebase {
	return &Timebase{}
}

// Restart marks now as t=0.
func (tb *Timebase) Restart(now time.Time) {
	tb.StartTime = now
	tb.started = true
}

// Clear returns the timebase to the never-started state.
func (tb *Timebase) Clear() {
	tb.StartTime = time.Time{}
	tb.started = false
}

// Elapsed returns seconds since the last Restart, or 0 if never started.
func (tb *Timebase) Elapsed(now time.Time) float64 {
	if !tb.started {
		return 0
	}
	return now.Sub(tb.StartTime).Seconds()
}

// Window returns the visible x range for the latest time t: a trailing
// window of span seconds that stays anchored at zero until t exceeds span.
func Window(t, span float64) (lo, hi float64) {
	return math.Max(0, t-span), math.Max(span, t)
}
