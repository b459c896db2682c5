package transducer

import (
	"math"
	"time"
)

// Range is a closed interval in engineering units.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

var (
	InputRange  = Range{Min: 4.0, Max: 20.0} // mA
	OutputRange = Range{Min: 3.0, Max: 15.0} // psi
	SafetyRange = Range{Min: 2.0, Max: 16.0} // psi, hard bound on the simulated output
)

const (
	DefaultTimeConstant = 0.5  // seconds
	DefaultNoiseStdDev  = 0.05 // psi
	DefaultDriftRate    = 0.01 // psi per hour
	RestPressure        = 3.0  // psi at minimum input
)

// Params are the dynamic characteristics of the simulated instrument.
type Params struct {
	TimeConstant float64 // First-order lag, seconds
	NoiseStdDev  float64 // Gaussian noise, psi
	DriftRate    float64 // Upward drift, psi/hour
}

// DefaultParams returns the nominal instrument dynamics.
func DefaultParams() Params {
	return Params{
		TimeConstant: DefaultTimeConstant,
		NoiseStdDev:  DefaultNoiseStdDev,
		DriftRate:    DefaultDriftRate,
	}
}

// State is a read-only copy of the model's mutable fields.
type State struct {
	ZeroError  float64 // psi
	SpanError  float64 // percent of nominal span
	ZeroAdjust float64 // psi
	SpanAdjust float64 // factor
	Pressure   float64 // psi
	LastUpdate time.Time
}

// Model is the I/P transducer digital twin. It maps a 4-20 mA input to a
// 3-15 psi output through a first-order lag with noise, drift and zero/span
// faults. A Model is not safe for concurrent use.
type Model struct {
	params Params
	clock  Clock
	noise  NoiseSource

	zeroError  float64
	spanError  float64
	zeroAdjust float64
	spanAdjust float64

	pressure   float64
	lastUpdate time.Time
}

// Option configures a Model at construction.
type Option func(*Model)

// WithParams overrides the default dynamics.
func WithParams(p Params) Option {
	return func(m *Model) { m.params = p }
}

// WithClock sets the time source used by Update.
func WithClock(c Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithNoise sets the Gaussian noise source.
func WithNoise(n NoiseSource) Option {
	return func(m *Model) { m.noise = n }
}

// New creates a model at rest with no faults and neutral calibration.
// The last update timestamp is seeded from the clock so the first Update
// does not see a spurious elapsed interval.
func New(opts ...Option) *Model {
	m := &Model{
		params:     DefaultParams(),
		clock:      SystemClock{},
		spanAdjust: 1.0,
		pressure:   RestPressure,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.noise == nil {
		m.noise = NewGaussianNoise(uint64(time.Now().UnixNano()))
	}
	m.lastUpdate = m.clock.Now()
	return m
}

// Update advances the simulation to the clock's current time with the given
// input current and returns the new output pressure. Out-of-range input is
// clamped, never rejected.
func (m *Model) Update(inputCurrent float64) float64 {
	now := m.clock.Now()
	dt := now.Sub(m.lastUpdate)
	m.lastUpdate = now
	return m.Step(inputCurrent, dt)
}

// Step advances the simulation by an explicit interval without consulting
// the clock.
func (m *Model) Step(inputCurrent float64, dt time.Duration) float64 {
	secs := dt.Seconds()
	if secs < 0 {
		secs = 0
	}

	target := m.Target(inputCurrent)

	// Exact decay of a continuous first-order system over secs
	alpha := 0.0
	if m.params.TimeConstant > 0 {
		alpha = math.Exp(-secs / m.params.TimeConstant)
	}
	p := alpha*m.pressure + (1-alpha)*target
	p += m.noise.Gaussian(0, m.params.NoiseStdDev)
	p += m.params.DriftRate / 3600 * secs

	if math.IsNaN(p) {
		p = m.pressure
	}
	m.pressure = SafetyRange.Clamp(p)
	return m.pressure
}

// Target returns the steady-state pressure for the given input current under
// the present faults and adjustments.
func (m *Model) Target(inputCurrent float64) float64 {
	current := InputRange.Clamp(inputCurrent)
	return m.EffectiveZero() + (current-InputRange.Min)*m.EffectiveSlope()
}

// EffectiveZero is the output at minimum input, psi.
func (m *Model) EffectiveZero() float64 {
	return OutputRange.Min + m.zeroError + m.zeroAdjust
}

// EffectiveSlope is the gain in psi per mA.
func (m *Model) EffectiveSlope() float64 {
	return nominalSlope() * (1 + m.spanError/100) * m.spanAdjust
}

// SetZeroError injects a zero offset fault in psi.
func (m *Model) SetZeroError(errPsi float64) {
	m.zeroError = errPsi
}

// SetSpanError injects a span fault as a percentage of nominal span.
func (m *Model) SetSpanError(errPercent float64) {
	m.spanError = errPercent
}

// CalibrateZero trims the zero so that the target at minimum input equals
// observed.
func (m *Model) CalibrateZero(observed float64) {
	m.zeroAdjust = observed - OutputRange.Min - m.zeroError
}

// CalibrateSpan trims the gain so that the target at maximum input equals
// observed. It reads the present zero adjustment, so it must follow
// CalibrateZero; a later CalibrateZero, SetZeroError or SetSpanError
// invalidates the result. When the span fault cancels the gain entirely the
// adjustment is left unchanged.
func (m *Model) CalibrateSpan(observed float64) {
	spanContribution := observed - (OutputRange.Min + m.zeroError + m.zeroAdjust)
	denom := OutputRange.Span() * (1 + m.spanError/100)
	if denom == 0 {
		return
	}
	adj := spanContribution / denom
	if math.IsNaN(adj) || math.IsInf(adj, 0) {
		return
	}
	m.spanAdjust = adj
}

// Pressure returns the last computed output in psi.
func (m *Model) Pressure() float64 {
	return m.pressure
}

// Params returns the dynamics the model was built with.
func (m *Model) Params() Params {
	return m.params
}

// Snapshot returns a copy of the mutable state.
func (m *Model) Snapshot() State {
	return State{
		ZeroError:  m.zeroError,
		SpanError:  m.spanError,
		ZeroAdjust: m.zeroAdjust,
		SpanAdjust: m.spanAdjust,
		Pressure:   m.pressure,
		LastUpdate: m.lastUpdate,
	}
}

func nominalSlope() float64 {
	return OutputRange.Span() / InputRange.Span()
}
