// vakit-tmux prints the next prayer for a tmux status bar. It works fully
// offline: the solar engine computes everything on-device, so a flaky
// network can never stall the status line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/cache"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/prayer"
	"github.com/vakitapp/vakit/internal/provider"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	latitude := flag.Float64("latitude", 0, "Latitude (default: configured location)")
	longitude := flag.Float64("longitude", 0, "Longitude (default: configured location)")
	timezone := flag.String("timezone", "", "IANA timezone (default: configured location)")
	method := flag.String("method", "", "Calculation method (default: configured)")
	madhab := flag.String("madhab", "", "Asr school: shafi or hanafi")
	format := flag.String("format", prayer.FormatShortNameAndTime, "Display format or custom Go template")
	timeFormat := flag.String("time-format", "", "Time format: 12h or 24h")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vakit-tmux %s\n", version)
		return
	}

	if err := run(*latitude, *longitude, *timezone, *method, *madhab, *format, *timeFormat); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lat, lon float64, tz, method, madhab, format, timeFormat string) error {
	settings, err := config.Load()
	if err != nil {
		settings = &config.Settings{}
		*settings = config.Default()
	}

	if lat != 0 || lon != 0 {
		settings.Location = config.LocationSelection{
			Mode:      config.LocationManual,
			Latitude:  lat,
			Longitude: lon,
			Timezone:  settings.Location.Timezone,
		}
	}
	if tz != "" {
		settings.Location.Timezone = tz
	}
	if method != "" {
		m, err := astro.ParseMethod(method)
		if err != nil {
			return err
		}
		settings.Calc.Method = m
	}
	if madhab != "" {
		m, err := astro.ParseMadhab(madhab)
		if err != nil {
			return err
		}
		settings.Calc.Madhab = m
	}
	if timeFormat != "" {
		settings.TimeFormat = timeFormat
	}

	chain := provider.NewFallback(cache.New(), provider.NewLocal(astro.NewSolarEngine()), nil, zerolog.Nop())
	chain.Offline = true

	now := time.Now().In(settings.Location.TimezoneLocation())
	ctx := context.Background()

	today, err := chain.PrayerTimes(ctx, now, settings.Location, settings.Calc)
	if err != nil {
		return err
	}
	var tomorrow *prayer.Day
	if t, err := chain.PrayerTimes(ctx, now.AddDate(0, 0, 1), settings.Location, settings.Calc); err == nil {
		tomorrow = &t
	}

	next, ok := prayer.NextAcross(today, tomorrow, now)
	if !ok {
		return fmt.Errorf("could not determine next prayer")
	}

	fmt.Print(prayer.FormatOutput(next, now, format, display.ClockLayout(settings.TimeFormat)))
	return nil
}
