// Package cli wires the vakit commands: resolving settings from flags and
// config, building the provider chain, and rendering output.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vakitapp/vakit/internal/api"
	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/cache"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/provider"
)

// Global flags shared across all subcommands.
var (
	FlagLatitude   float64
	FlagLongitude  float64
	FlagCity       string
	FlagCountry    string
	FlagTimezone   string
	FlagMethod     string
	FlagMadhab     string
	FlagTimeFormat string
	FlagJSON       bool
	FlagOffline    bool
	FlagVerbose    bool
)

// loadedSettings holds the config loaded during PersistentPreRunE,
// available to all subcommand handlers.
var loadedSettings *config.Settings

// NewRootCmd creates the root command for the vakit CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "vakit",
		Short:   "Islamic prayer times, Ramadan calendar and reminders",
		Long:    "Prayer times computed on-device with an astronomical engine,\nwith the AlAdhan API as a fallback and cross-check.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedSettings = settings
			return nil
		},
		// Default action: show today's times.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude")
	pf.StringVar(&FlagCity, "city", "", "Override city label (display only)")
	pf.StringVar(&FlagCountry, "country", "", "Override country label (display only)")
	pf.StringVar(&FlagTimezone, "timezone", "", "Override IANA timezone")
	pf.StringVar(&FlagMethod, "method", "", "Calculation method (see 'vakit methods')")
	pf.StringVar(&FlagMadhab, "madhab", "", "Asr school: shafi or hanafi")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.BoolVar(&FlagOffline, "offline", false, "Never touch the network: no remote fallback, no cross-check")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newRamadanCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newNotifyCmd())
	rootCmd.AddCommand(newLocateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// newLogger builds the CLI logger: human-readable, on stderr so command
// output stays pipeable.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if FlagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// effectiveSettings returns the merged settings, applying the priority:
// CLI flags > config file > defaults. Cobra's Changed() detects whether a
// flag was explicitly set, so --latitude 0 still wins over the config.
func effectiveSettings(cmd *cobra.Command) (config.Settings, error) {
	settings := config.Default()
	if loadedSettings != nil {
		settings = *loadedSettings
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	overrodeCoords := false
	if flagWasSet(flags, root, "latitude") {
		settings.Location.Latitude = FlagLatitude
		overrodeCoords = true
	}
	if flagWasSet(flags, root, "longitude") {
		settings.Location.Longitude = FlagLongitude
		overrodeCoords = true
	}
	if overrodeCoords {
		settings.Location.Mode = config.LocationManual
		settings.Location.City = ""
		settings.Location.Country = ""
	}
	if flagWasSet(flags, root, "city") {
		settings.Location.City = FlagCity
	}
	if flagWasSet(flags, root, "country") {
		settings.Location.Country = FlagCountry
	}
	if flagWasSet(flags, root, "timezone") {
		settings.Location.Timezone = FlagTimezone
	}
	if flagWasSet(flags, root, "method") {
		m, err := astro.ParseMethod(FlagMethod)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Calc.Method = m
	}
	if flagWasSet(flags, root, "madhab") {
		m, err := astro.ParseMadhab(FlagMadhab)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Calc.Madhab = m
	}
	if flagWasSet(flags, root, "time-format") {
		settings.TimeFormat = FlagTimeFormat
	}
	if settings.TimeFormat == "" {
		settings.TimeFormat = "24h"
	}

	if err := settings.Location.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// flagWasSet checks whether a flag was explicitly set on either the local
// or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// app bundles everything a command handler needs.
type app struct {
	settings config.Settings
	chain    *provider.Fallback
	log      zerolog.Logger
	now      time.Time
}

// newApp resolves settings and builds the provider chain for a command.
func newApp(cmd *cobra.Command) (*app, error) {
	settings, err := effectiveSettings(cmd)
	if err != nil {
		return nil, err
	}

	log := newLogger()
	chain := provider.NewFallback(
		cache.New(),
		provider.NewLocal(astro.NewSolarEngine()),
		provider.NewRemote(api.NewClient()),
		log,
	)
	if FlagOffline {
		chain.Offline = true
	}

	return &app{
		settings: settings,
		chain:    chain,
		log:      log,
		now:      time.Now().In(settings.Location.TimezoneLocation()),
	}, nil
}
