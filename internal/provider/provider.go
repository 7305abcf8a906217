// Package provider resolves prayer times for a location and date. Providers
// share one interface so the fallback chain can treat the offline solar
// engine, the remote AlAdhan API, and the in-memory cache uniformly.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/prayer"
)

// ErrNoData reports that nothing could be resolved for a requested range.
// Callers use it to tell "nothing computed yet" apart from transport or
// calculation failures.
var ErrNoData = errors.New("no prayer time data available")

// Provider computes or fetches a full day of prayer times.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// OfflineCapable reports whether the provider works without network.
	OfflineCapable() bool

	// PrayerTimes resolves all instants for the calendar date in the
	// location's timezone. The returned Day is validated and carries
	// a Source tag.
	PrayerTimes(ctx context.Context, date time.Time, loc config.LocationSelection, calc config.CalcSettings) (prayer.Day, error)
}

// midnight truncates t to local midnight in tz, the canonical Day.Date form.
func midnight(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
}
