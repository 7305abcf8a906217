// Package ramadan derives the fasting calendar and the moment-to-moment
// fasting state from prayer days.
package ramadan

import (
	"time"

	"github.com/vakitapp/vakit/internal/hijri"
	"github.com/vakitapp/vakit/internal/prayer"
)

// State is the fasting phase at an instant within a Ramadan day.
type State string

const (
	// StateBeforeSuhoor runs from midnight until Imsak; eating is allowed.
	StateBeforeSuhoor State = "beforeSuhoor"
	// StateFasting runs from Imsak until Iftar (Maghrib).
	StateFasting State = "fasting"
	// StateAfterIftar runs from Iftar until midnight.
	StateAfterIftar State = "afterIftar"
	// StateNotRamadan means the instant falls outside Ramadan.
	StateNotRamadan State = "notRamadan"
)

// Display renders the state for humans.
func (s State) Display() string {
	switch s {
	case StateBeforeSuhoor:
		return "Before Suhoor"
	case StateFasting:
		return "Fasting"
	case StateAfterIftar:
		return "After Iftar"
	default:
		return "Not Ramadan"
	}
}

// Day is one fasting day: its Gregorian date, Hijri date, ordinal within
// the month, and the two instants that bound the fast.
type Day struct {
	Date      time.Time
	HijriDate hijri.Date
	DayNumber int
	Imsak     time.Time
	Iftar     time.Time
}

// StateAt splits the day strictly three ways on the imsak and iftar
// bounds. At exactly imsak the fast has begun; at exactly iftar it has
// ended.
func StateAt(imsak, iftar, now time.Time) State {
	switch {
	case now.Before(imsak):
		return StateBeforeSuhoor
	case now.Before(iftar):
		return StateFasting
	default:
		return StateAfterIftar
	}
}

// BuildDays converts prayer days into fasting days, keeping only those that
// fall in Ramadan. DayNumber comes from the Hijri day of month, so a batch
// straddling the month boundary yields a correctly trimmed calendar.
func BuildDays(days []prayer.Day) ([]Day, error) {
	out := make([]Day, 0, len(days))
	for _, d := range days {
		// Noon avoids any ambiguity at the civil midnight boundary.
		h, err := hijri.FromTime(d.Date.Add(12 * time.Hour))
		if err != nil {
			return nil, err
		}
		if !h.IsRamadan() {
			continue
		}
		out = append(out, Day{
			Date:      d.Date,
			HijriDate: h,
			DayNumber: h.Day,
			Imsak:     d.Imsak,
			Iftar:     d.Maghrib,
		})
	}
	return out, nil
}

// Today picks the fasting day matching now's calendar date, if any.
func Today(days []Day, now time.Time) (Day, bool) {
	for _, d := range days {
		if d.Date.Year() == now.Year() && d.Date.YearDay() == now.YearDay() {
			return d, true
		}
	}
	return Day{}, false
}

// CurrentState resolves the fasting state for now against a calendar.
// Outside Ramadan it returns StateNotRamadan.
func CurrentState(days []Day, now time.Time) State {
	d, ok := Today(days, now)
	if !ok {
		return StateNotRamadan
	}
	return StateAt(d.Imsak, d.Iftar, now)
}

// UntilIftar returns the remaining fast duration, or false when not fasting.
func UntilIftar(days []Day, now time.Time) (time.Duration, bool) {
	d, ok := Today(days, now)
	if !ok || StateAt(d.Imsak, d.Iftar, now) != StateFasting {
		return 0, false
	}
	return d.Iftar.Sub(now), true
}
