package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vakitapp/vakit/internal/api"
	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/cache"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/prayer"
)

// Remote fetches prayer times from the AlAdhan API.
type Remote struct {
	client *api.Client
}

// NewRemote wraps an API client.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

func (p *Remote) Name() string { return "remoteAPI" }

func (p *Remote) OfflineCapable() bool { return false }

// PrayerTimes fetches the timings and converts them into a validated Day.
// The remote Imsak is discarded; Imsak is always derived from Fajr so the
// value matches the local engine's convention.
func (p *Remote) PrayerTimes(ctx context.Context, date time.Time, loc config.LocationSelection, calc config.CalcSettings) (prayer.Day, error) {
	if err := loc.Validate(); err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: %w", err)
	}

	tz := loc.TimezoneLocation()
	day := midnight(date, tz)

	school := 0
	if calc.Madhab == astro.MadhabHanafi {
		school = 1
	}

	resp, err := p.client.Timings(ctx, day, loc.Latitude, loc.Longitude,
		calc.Method, school, tz.String())
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: %w", err)
	}

	t := resp.Data.Timings
	fajr, err := parseClock(t.Fajr, day, tz)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: fajr: %w", err)
	}
	sunrise, err := parseClock(t.Sunrise, day, tz)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: sunrise: %w", err)
	}
	dhuhr, err := parseClock(t.Dhuhr, day, tz)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: dhuhr: %w", err)
	}
	asr, err := parseClock(t.Asr, day, tz)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: asr: %w", err)
	}
	maghrib, err := parseClock(t.Maghrib, day, tz)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: maghrib: %w", err)
	}
	isha, err := parseClock(t.Isha, day, tz)
	if err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: isha: %w", err)
	}

	d := prayer.Day{
		ID:      cache.Key(day, loc, calc.Method),
		Date:    day,
		Fajr:    fajr,
		Sunrise: sunrise,
		Dhuhr:   dhuhr,
		Asr:     asr,
		Maghrib: maghrib,
		Isha:    isha,
		Imsak:   fajr.Add(prayer.ImsakOffset),
		Source:  prayer.SourceRemoteAPI,
	}
	if err := d.Validate(); err != nil {
		return prayer.Day{}, fmt.Errorf("remote provider: %w", err)
	}
	return d, nil
}

// parseClock turns an AlAdhan timing string like "05:42 (+03)" into an
// instant on the given calendar day. The trailing zone annotation is
// dropped; the request already pinned the response to tz.
func parseClock(raw string, day time.Time, tz *time.Location) (time.Time, error) {
	clock := raw
	if i := strings.IndexByte(clock, ' '); i >= 0 {
		clock = clock[:i]
	}
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timing %q: %w", raw, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, tz), nil
}
