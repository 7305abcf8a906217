// Package notify builds the bounded reminder schedule and dispatches it as
// desktop notifications.
package notify

import (
	"fmt"
	"sort"
	"time"

	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/prayer"
)

const (
	// PlatformPendingLimit is the hard ceiling on simultaneously pending
	// notifications most platforms enforce.
	PlatformPendingLimit = 64
	// DefaultMaxPending is the default scheduling budget, kept below the
	// platform ceiling so other apps keep their headroom.
	DefaultMaxPending = 50
)

// Kind classifies a notification.
type Kind string

const (
	KindPrayer Kind = "prayer"
	KindImsak  Kind = "imsak"
	KindIftar  Kind = "iftar"
)

// Notification is one planned reminder. Constructed fresh on every
// scheduling pass; the dispatcher's pending set is the only persistence.
type Notification struct {
	// ID encodes kind, prayer slot and date, e.g. "prayer_fajr_2026-02-20".
	// Re-registration under the same ID replaces the previous entry.
	ID            string
	Label         string
	FireAt        time.Time
	Kind          Kind
	Prayer        prayer.Name
	TimeSensitive bool
}

// BuildSchedule turns prayer days into a sorted, capped notification plan.
// Days are walked in input order, prayers in canonical order with sunrise
// never a candidate. Instants at or before now are dropped. The result is
// sorted ascending by fire time and truncated to maxCount, so the soonest
// reminders win when the budget is tight. Total over any input; never errors.
func BuildSchedule(days []prayer.Day, settings config.ReminderSettings, maxCount int, now time.Time) []Notification {
	var out []Notification

	for _, day := range days {
		date := day.Date.Format("2006-01-02")

		for _, name := range prayer.Obligatory {
			if !settings.PrayerEnabled[string(name)] {
				continue
			}
			offset := time.Duration(settings.PrayerOffsetMinutes[string(name)]) * time.Minute
			fireAt := day.Time(name).Add(offset)
			if !fireAt.After(now) {
				continue
			}
			out = append(out, Notification{
				ID:            fmt.Sprintf("prayer_%s_%s", name, date),
				Label:         prayerLabel(name, day.Time(name), offset),
				FireAt:        fireAt,
				Kind:          KindPrayer,
				Prayer:        name,
				TimeSensitive: true,
			})
		}

		if settings.ImsakEnabled {
			fireAt := day.Imsak.Add(-time.Duration(settings.ImsakOffsetMinutes) * time.Minute)
			if fireAt.After(now) {
				out = append(out, Notification{
					ID:            fmt.Sprintf("imsak_%s", date),
					Label:         fmt.Sprintf("Imsak at %s, suhoor is ending", day.Imsak.Format("15:04")),
					FireAt:        fireAt,
					Kind:          KindImsak,
					TimeSensitive: true,
				})
			}
		}

		if settings.IftarEnabled {
			fireAt := day.Maghrib.Add(-time.Duration(settings.IftarOffsetMinutes) * time.Minute)
			if fireAt.After(now) {
				out = append(out, Notification{
					ID:            fmt.Sprintf("iftar_%s", date),
					Label:         fmt.Sprintf("Iftar at %s", day.Maghrib.Format("15:04")),
					FireAt:        fireAt,
					Kind:          KindIftar,
					TimeSensitive: true,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})
	if maxCount >= 0 && len(out) > maxCount {
		out = out[:maxCount]
	}
	return out
}

func prayerLabel(name prayer.Name, at time.Time, offset time.Duration) string {
	if offset == 0 {
		return fmt.Sprintf("Time for %s (%s)", name.Display(), at.Format("15:04"))
	}
	return fmt.Sprintf("%s at %s", name.Display(), at.Format("15:04"))
}
