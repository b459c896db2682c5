package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ip-twin.klederson.com/internal/transducer"
)

const (
	// Simulation loop
	DefaultInterval = 100 * time.Millisecond // Polling cadence while running
	MinInterval     = 10 * time.Millisecond
	HistoryLen      = 100 // Trailing samples kept for the trend chart

	// Trend chart
	ChartWindowSec = 20.0 // Visible trailing window in seconds
	GridLines      = 4    // Horizontal grid lines in the chart

	// Setpoint keys
	CurrentFineStep   = 0.1 // mA per arrow press
	CurrentCoarseStep = 1.0 // mA per shift+arrow / page key

	// Calibration field defaults
	DefaultZeroCal = 3.0  // psi expected at 4 mA
	DefaultSpanCal = 15.0 // psi expected at 20 mA

	// Stroke stimulus
	StimulusInterval = 200 * time.Millisecond
	SinePeriod       = 20 * time.Second
	StepDwell        = 4 * time.Second

	// App
	AppName    = "IP-TWIN"
	AppVersion = "1.0"
	EnvPrefix  = "IPTWIN"
)

// Stroke profile names.
const (
	StrokeOff   = ""
	StrokeSine  = "sine"
	StrokeSteps = "steps"
)

// Setting keys shared by viper and the command line flags.
const (
	KeyInterval     = "interval"
	KeyHistory      = "history"
	KeyTimeConstant = "time-constant"
	KeyNoise        = "noise"
	KeyDrift        = "drift"
	KeySeed         = "seed"
	KeyStroke       = "stroke"
	KeyLogFile      = "log-file"
	KeyLogLevel     = "log-level"
)

// ErrInvalidSetting is wrapped by every validation failure in Load.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings is the resolved runtime configuration.
type Settings struct {
	Interval time.Duration
	History  int
	Params   transducer.Params
	Seed     uint64 // 0 means seed from the wall clock
	Stroke   string
	LogFile  string
	LogLevel string
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInterval, DefaultInterval)
	v.SetDefault(KeyHistory, HistoryLen)
	v.SetDefault(KeyTimeConstant, transducer.DefaultTimeConstant)
	v.SetDefault(KeyNoise, transducer.DefaultNoiseStdDev)
	v.SetDefault(KeyDrift, transducer.DefaultDriftRate)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyStroke, StrokeOff)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "INFO")
}

// BindEnv lets IPTWIN_* environment variables override file values.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load resolves and validates Settings from v.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Interval: v.GetDuration(KeyInterval),
		History:  v.GetInt(KeyHistory),
		Params: transducer.Params{
			TimeConstant: v.GetFloat64(KeyTimeConstant),
			NoiseStdDev:  v.GetFloat64(KeyNoise),
			DriftRate:    v.GetFloat64(KeyDrift),
		},
		Seed:     v.GetUint64(KeySeed),
		Stroke:   strings.ToLower(strings.TrimSpace(v.GetString(KeyStroke))),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: strings.ToUpper(v.GetString(KeyLogLevel)),
	}

	if s.Interval < MinInterval {
		return s, fmt.Errorf("%w: %s must be at least %v, got %v", ErrInvalidSetting, KeyInterval, MinInterval, s.Interval)
	}
	if s.History < 2 {
		return s, fmt.Errorf("%w: %s must be at least 2, got %d", ErrInvalidSetting, KeyHistory, s.History)
	}
	if s.Params.TimeConstant <= 0 {
		return s, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSetting, KeyTimeConstant, s.Params.TimeConstant)
	}
	if s.Params.NoiseStdDev < 0 {
		return s, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidSetting, KeyNoise, s.Params.NoiseStdDev)
	}
	switch s.Stroke {
	case StrokeOff, StrokeSine, StrokeSteps:
	default:
		return s, fmt.Errorf("%w: %s must be %q or %q, got %q", ErrInvalidSetting, KeyStroke, StrokeSine, StrokeSteps, s.Stroke)
	}

	return s, nil
}
