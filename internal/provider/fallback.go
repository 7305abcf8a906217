package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vakitapp/vakit/internal/cache"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/hijri"
	"github.com/vakitapp/vakit/internal/prayer"
)

// driftThreshold is the local-vs-remote disagreement above which the
// cross-validation pass logs a warning.
const driftThreshold = 5 * time.Minute

// crossValidateTimeout bounds the background remote fetch so a dead
// network cannot pin goroutines.
const crossValidateTimeout = 15 * time.Second

// Fallback resolves prayer times through a chain: cache first, then the
// offline engine, then the remote API. A local hit additionally spawns a
// background comparison against the remote source; disagreement is logged,
// never surfaced.
type Fallback struct {
	cache  *cache.Store
	local  *Local
	remote *Remote
	log    zerolog.Logger

	// CrossValidate toggles the background remote comparison after a
	// local-engine hit. On by default; tests and offline mode turn it off.
	CrossValidate bool

	// Offline removes the remote link entirely: a local failure is final
	// and no cross-validation runs.
	Offline bool

	pending sync.WaitGroup
}

// NewFallback builds the standard chain.
func NewFallback(store *cache.Store, local *Local, remote *Remote, log zerolog.Logger) *Fallback {
	return &Fallback{
		cache:         store,
		local:         local,
		remote:        remote,
		log:           log,
		CrossValidate: true,
	}
}

func (f *Fallback) Name() string { return "fallback" }

// OfflineCapable is true because the local engine link is.
func (f *Fallback) OfflineCapable() bool { return true }

// PrayerTimes walks the chain. A local calculation failure is absorbed by
// escalating to the remote link; a remote failure after that propagates
// to the caller as-is.
func (f *Fallback) PrayerTimes(ctx context.Context, date time.Time, loc config.LocationSelection, calc config.CalcSettings) (prayer.Day, error) {
	tz := loc.TimezoneLocation()
	day := midnight(date, tz)
	key := cache.Key(day, loc, calc.Method)

	if d, ok := f.cache.Get(key); ok {
		return d, nil
	}

	localDay, localErr := f.local.PrayerTimes(ctx, day, loc, calc)
	if localErr == nil {
		f.cache.Set(key, localDay)
		if f.CrossValidate && !f.Offline {
			f.spawnCrossValidation(day, loc, calc, localDay)
		}
		return localDay, nil
	}
	if f.Offline {
		return prayer.Day{}, localErr
	}
	f.log.Warn().
		Err(localErr).
		Str("date", day.Format("2006-01-02")).
		Msg("local engine failed, falling back to remote")

	remoteDay, remoteErr := f.remote.PrayerTimes(ctx, day, loc, calc)
	if remoteErr != nil {
		return prayer.Day{}, remoteErr
	}
	f.cache.Set(key, remoteDay)
	return remoteDay, nil
}

// Range resolves consecutive days starting at from. Days that cannot be
// resolved are skipped rather than failing the batch; the result may be
// shorter than count. An empty result returns ErrNoData.
func (f *Fallback) Range(ctx context.Context, from time.Time, count int, loc config.LocationSelection, calc config.CalcSettings) ([]prayer.Day, error) {
	days := make([]prayer.Day, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return days, err
		}
		d, err := f.PrayerTimes(ctx, from.AddDate(0, 0, i), loc, calc)
		if err != nil {
			f.log.Warn().
				Err(err).
				Str("date", from.AddDate(0, 0, i).Format("2006-01-02")).
				Msg("skipping unresolvable day in range")
			continue
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w for any day in range", ErrNoData)
	}
	return days, nil
}

// HijriDate converts the instant offline. The chain owns this so callers
// have one source for all calendar answers.
func (f *Fallback) HijriDate(t time.Time) (hijri.Date, error) {
	return hijri.FromTime(t)
}

// Wait blocks until in-flight cross-validation goroutines finish.
func (f *Fallback) Wait() {
	f.pending.Wait()
}

// spawnCrossValidation compares the local result against the remote API in
// the background. All failures are absorbed; the user already has times.
func (f *Fallback) spawnCrossValidation(day time.Time, loc config.LocationSelection, calc config.CalcSettings, localDay prayer.Day) {
	f.pending.Add(1)
	go func() {
		defer f.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), crossValidateTimeout)
		defer cancel()

		remoteDay, err := f.remote.PrayerTimes(ctx, day, loc, calc)
		if err != nil {
			f.log.Debug().
				Err(err).
				Str("date", day.Format("2006-01-02")).
				Msg("cross-validation fetch failed")
			return
		}

		for _, name := range prayer.All {
			drift := localDay.Time(name).Sub(remoteDay.Time(name))
			if drift < 0 {
				drift = -drift
			}
			if drift > driftThreshold {
				f.log.Warn().
					Str("date", day.Format("2006-01-02")).
					Str("prayer", string(name)).
					Str("local", localDay.Time(name).Format("15:04")).
					Str("remote", remoteDay.Time(name).Format("15:04")).
					Dur("drift", drift).
					Msg("local engine disagrees with remote source")
			}
		}
	}()
}
