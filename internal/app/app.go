package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ip-twin.klederson.com/internal/config"
	"ip-twin.klederson.com/internal/logging"
	"ip-twin.klederson.com/internal/stimulus"
	"ip-twin.klederson.com/internal/transducer"
	"ip-twin.klederson.com/internal/trend"
	"ip-twin.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	model    *transducer.Model
	history  *trend.History
	timebase *trend.Timebase
	clock    transducer.Clock
	stroker  *stimulus.Stroker
}

// AppModel is the root Bubble Tea model for the I/P twin. It owns the
// transducer; every call into it happens on the Bubble Tea update loop.
type AppModel struct {
	width  int
	height int

	running  bool
	settings config.Settings
	setpoint float64 // mA, always within the input range

	fields    []textinput.Model
	focus     int // -1 when no field has focus
	notice    string
	noticeErr bool

	shared *shared

	// Cached snapshot
	samples []trend.Sample
}

// New creates an AppModel driven by the system clock.
func New(settings config.Settings) AppModel {
	return NewWithClock(settings, transducer.SystemClock{})
}

// NewWithClock creates an AppModel whose transducer reads time from clock.
func NewWithClock(settings config.Settings, clock transducer.Clock) AppModel {
	m := AppModel{
		settings: settings,
		setpoint: transducer.InputRange.Min,
		fields:   newFields(),
		focus:    -1,
		shared: &shared{
			history:  trend.NewHistory(settings.History),
			timebase: trend.NewTimebase(),
			clock:    clock,
		},
	}
	m.shared.model = m.newTransducer()
	return m
}

func (m AppModel) newTransducer() *transducer.Model {
	seed := m.settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return transducer.New(
		transducer.WithParams(m.settings.Params),
		transducer.WithClock(m.shared.clock),
		transducer.WithNoise(transducer.NewGaussianNoise(seed)),
	)
}

func (m AppModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.running {
			m.poll()
		}
		return m, m.tickCmd()

	case stimulus.SetpointMsg:
		m.setSetpoint(msg.Current)
		return m, nil
	}

	// Cursor blink and other textinput housekeeping
	if m.focus >= 0 {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus >= 0 {
		return m.handleFieldKey(msg)
	}

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.stopStroker()
		return m, tea.Quit

	case "s", "S", " ":
		m.start()

	case "p", "P":
		m.stop()

	case "r", "R":
		m.reset()

	case "left", "h":
		m.setSetpoint(m.setpoint - config.CurrentFineStep)

	case "right", "l":
		m.setSetpoint(m.setpoint + config.CurrentFineStep)

	case "shift+left", "down", "j", "pgdown":
		m.setSetpoint(m.setpoint - config.CurrentCoarseStep)

	case "shift+right", "up", "k", "pgup":
		m.setSetpoint(m.setpoint + config.CurrentCoarseStep)

	case "home":
		m.setSetpoint(transducer.InputRange.Min)

	case "end":
		m.setSetpoint(transducer.InputRange.Max)

	case "tab":
		return m, m.focusField(int(fieldCurrent))

	case "shift+tab":
		return m, m.focusField(int(fieldCount) - 1)
	}

	return m, nil
}

func (m AppModel) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopStroker()
		return m, tea.Quit

	case "esc":
		m.blurFields()
		return m, nil

	case "tab":
		return m, m.focusField((m.focus + 1) % int(fieldCount))

	case "shift+tab":
		return m, m.focusField((m.focus - 1 + int(fieldCount)) % int(fieldCount))

	case "enter":
		m.applyField(fieldID(m.focus))
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *AppModel) focusField(i int) tea.Cmd {
	m.blurFields()
	m.focus = i
	return m.fields[i].Focus()
}

func (m *AppModel) blurFields() {
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.focus = -1
}

// applyField parses the focused field and issues the matching command.
// Invalid text leaves the transducer untouched.
func (m *AppModel) applyField(id fieldID) {
	switch id {
	case fieldCurrent:
		v, err := parseValue(m.fields[fieldCurrent].Value())
		if err != nil {
			m.reject(err)
			return
		}
		m.setSetpoint(v)
		m.inform(fmt.Sprintf("Input set to %.2f mA", m.setpoint))

	case fieldZeroError, fieldSpanError:
		zero, err := parseValue(m.fields[fieldZeroError].Value())
		if err != nil {
			m.reject(err)
			return
		}
		span, err := parseValue(m.fields[fieldSpanError].Value())
		if err != nil {
			m.reject(err)
			return
		}
		m.shared.model.SetZeroError(zero)
		m.shared.model.SetSpanError(span)
		logging.Log.Infof("faults applied: zero %+.4f psi, span %+.3f %%", zero, span)
		m.inform(fmt.Sprintf("Faults: zero %+.3f psi, span %+.2f %%", zero, span))

	case fieldZeroCal:
		v, err := parseValue(m.fields[fieldZeroCal].Value())
		if err != nil {
			m.reject(err)
			return
		}
		m.shared.model.CalibrateZero(v)
		st := m.shared.model.Snapshot()
		logging.Log.Infof("zero calibrated to %.4f psi, adjust %+.4f psi", v, st.ZeroAdjust)
		m.inform(fmt.Sprintf("Zero trimmed to %.3f psi", v))

	case fieldSpanCal:
		v, err := parseValue(m.fields[fieldSpanCal].Value())
		if err != nil {
			m.reject(err)
			return
		}
		m.shared.model.CalibrateSpan(v)
		st := m.shared.model.Snapshot()
		logging.Log.Infof("span calibrated to %.4f psi, adjust x%.5f", v, st.SpanAdjust)
		m.inform(fmt.Sprintf("Span trimmed to %.3f psi", v))
	}
}

func (m *AppModel) reject(err error) {
	logging.Log.Warningf("rejected input: %v", err)
	m.notice = err.Error()
	m.noticeErr = true
}

func (m *AppModel) inform(s string) {
	m.notice = s
	m.noticeErr = false
}

// setSetpoint clamps and stores the input current. While stopped each
// change is applied to the transducer immediately.
func (m *AppModel) setSetpoint(mA float64) {
	m.setpoint = transducer.InputRange.Clamp(mA)
	if m.focus != int(fieldCurrent) {
		m.fields[fieldCurrent].SetValue(fmt.Sprintf("%.2f", m.setpoint))
	}
	if !m.running {
		m.poll()
	}
}

// poll runs one transducer update and records it in the trend history.
func (m *AppModel) poll() {
	p := m.shared.model.Update(m.setpoint)
	m.shared.history.Push(trend.Sample{
		Elapsed:  m.shared.timebase.Elapsed(m.shared.clock.Now()),
		Current:  m.setpoint,
		Pressure: p,
	})
	m.samples = m.shared.history.Values()
}

func (m *AppModel) start() {
	if m.running {
		return
	}
	m.running = true
	m.shared.timebase.Restart(m.shared.clock.Now())
	m.shared.history.Reset()
	m.samples = nil
	logging.Log.Infof("simulation started at %.2f mA", m.setpoint)
}

func (m *AppModel) stop() {
	if !m.running {
		return
	}
	m.running = false
	logging.Log.Infof("simulation stopped at %.3f psi", m.shared.model.Pressure())
}

// reset discards the transducer and history and restores every default.
func (m *AppModel) reset() {
	m.running = false
	m.shared.model = m.newTransducer()
	m.shared.history.Reset()
	m.shared.timebase.Clear()
	m.samples = nil
	m.setpoint = transducer.InputRange.Min
	m.fields = newFields()
	m.focus = -1
	m.inform("Transducer reset")
	logging.Log.Info("transducer reset")
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing I/P twin..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 10 {
		bodyH = 10
	}

	controlW := 44
	if m.width < 100 {
		controlW = m.width * 2 / 5
	}
	if controlW < 28 {
		controlW = 28
	}
	chartW := m.width - controlW
	if chartW < 30 {
		chartW = 30
	}

	model := m.shared.model
	menuBar := ui.RenderMenuBar(m.width, m.running, m.settings.Stroke)

	controlPanel := ui.RenderControlPanel(ui.ControlView{
		Current:   m.setpoint,
		Pressure:  model.Pressure(),
		Target:    model.Target(m.setpoint),
		State:     model.Snapshot(),
		Params:    model.Params(),
		Fields:    fieldViews(m.fields, m.focus),
		Notice:    m.notice,
		NoticeErr: m.noticeErr,
	}, controlW, bodyH)

	innerW := chartW - 2
	innerH := bodyH - 4
	if innerH < 4 {
		innerH = 4
	}
	chart := trend.Render(innerW, innerH, m.samples, config.ChartWindowSec)
	legend := trend.RenderLegend(innerW)
	chartPanel := ui.RenderChartPanel(chartW, bodyH, chart, legend)

	statusBar := ui.RenderStatusBar(m.width, m.running, trend.Pressures(m.samples),
		m.shared.history.Cap(), model.Snapshot())

	return ui.ComposeLayout(menuBar, controlPanel, chartPanel, statusBar)
}

// StartStroker starts the configured stroke profile, if any. Must be called
// before p.Run().
func (m *AppModel) StartStroker(p *tea.Program) error {
	profile, err := stimulus.ProfileFor(m.settings.Stroke)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	m.shared.stroker = stimulus.NewStroker(profile, config.StimulusInterval)
	return m.shared.stroker.Start(p)
}

func (m *AppModel) stopStroker() {
	if m.shared.stroker != nil {
		m.shared.stroker.Stop()
	}
}

func (m AppModel) tickCmd() tea.Cmd {
	return tea.Tick(m.settings.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
