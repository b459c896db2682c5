package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ip-twin.klederson.com/internal/app"
	"ip-twin.klederson.com/internal/config"
	"ip-twin.klederson.com/internal/logging"
	"ip-twin.klederson.com/internal/transducer"
)

var flagConfig string

func main() {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "ip-twin",
		Short: "I/P Twin - Terminal digital twin of a 4-20 mA to 3-15 psi transducer",
		Long: `I/P Twin simulates a current-to-pressure transducer: a 4-20 mA input
drives a 3-15 psi output through a first-order lag with noise and drift.

Inject zero and span faults, then trim them out with the zero and span
calibration fields while watching the live trend. Use --stroke to drive
the input automatically.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "Config file (yaml, json or toml)")
	flags.Duration(config.KeyInterval, config.DefaultInterval, "Simulation polling interval")
	flags.Int(config.KeyHistory, config.HistoryLen, "Samples kept in the trend window")
	flags.Float64(config.KeyTimeConstant, transducer.DefaultTimeConstant, "Response time constant in seconds")
	flags.Float64(config.KeyNoise, transducer.DefaultNoiseStdDev, "Output noise standard deviation in psi")
	flags.Float64(config.KeyDrift, transducer.DefaultDriftRate, "Output drift in psi per hour")
	flags.Uint64(config.KeySeed, 0, "Noise seed (0 seeds from the clock)")
	flags.String(config.KeyStroke, config.StrokeOff, `Drive the input automatically: "sine" or "steps"`)
	flags.String(config.KeyLogFile, "", "Append logs to this file")
	flags.String(config.KeyLogLevel, "INFO", "Log level (DEBUG, INFO, WARNING, ERROR)")

	config.SetDefaults(v)
	config.BindEnv(v)
	if err := v.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(v *viper.Viper) error {
	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	logCloser, err := logging.Open(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	logging.Log.Infof("%s v%s starting: interval=%v history=%d tau=%.3fs noise=%.3fpsi drift=%.4fpsi/h stroke=%q",
		config.AppName, config.AppVersion, settings.Interval, settings.History,
		settings.Params.TimeConstant, settings.Params.NoiseStdDev, settings.Params.DriftRate, settings.Stroke)

	model := app.New(settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Start the stimulus with reference to the tea program
	if err := model.StartStroker(p); err != nil {
		logging.Log.Errorf("stroke: %v", err)
		return err
	}

	_, err = p.Run()
	if err != nil {
		logging.Log.Errorf("program exited: %v", err)
	}
	return err
}
