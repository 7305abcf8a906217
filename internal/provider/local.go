package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/cache"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/prayer"
)

// Local computes prayer times on-device with an astronomical engine.
// It needs no network and is the chain's workhorse.
type Local struct {
	engine astro.Engine
}

// NewLocal wraps an engine. Pass astro.NewSolarEngine() for the default.
func NewLocal(engine astro.Engine) *Local {
	return &Local{engine: engine}
}

func (p *Local) Name() string { return "localEngine" }

func (p *Local) OfflineCapable() bool { return true }

// PrayerTimes computes the six instants for the date and derives Imsak.
func (p *Local) PrayerTimes(ctx context.Context, date time.Time, loc config.LocationSelection, calc config.CalcSettings) (prayer.Day, error) {
	if err := ctx.Err(); err != nil {
		return prayer.Day{}, err
	}
	if err := loc.Validate(); err != nil {
		return prayer.Day{}, fmt.Errorf("local provider: %w", err)
	}

	tz := loc.TimezoneLocation()
	day := midnight(date, tz)

	params := astro.ParamsFor(calc.Method, calc.Madhab, calc.HighLatitudeRule)
	raw, err := p.engine.Compute(astro.Coordinates{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, day, params)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("local provider: %w", err)
	}

	d := prayer.Day{
		ID:      cache.Key(day, loc, calc.Method),
		Date:    day,
		Fajr:    raw.Fajr,
		Sunrise: raw.Sunrise,
		Dhuhr:   raw.Dhuhr,
		Asr:     raw.Asr,
		Maghrib: raw.Maghrib,
		Isha:    raw.Isha,
		Imsak:   raw.Fajr.Add(prayer.ImsakOffset),
		Source:  prayer.SourceLocalEngine,
	}
	if err := d.Validate(); err != nil {
		return prayer.Day{}, fmt.Errorf("local provider: %w", err)
	}
	return d, nil
}
