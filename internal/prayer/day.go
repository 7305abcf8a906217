package prayer

import (
	"fmt"
	"time"
)

// ImsakOffset is the fixed Imsak derivation: Fajr minus ten minutes.
// Turkish regional convention, not user-configurable.
const ImsakOffset = -10 * time.Minute

// Source tags where a Day's values came from.
type Source string

const (
	SourceLocalEngine Source = "localEngine"
	SourceRemoteAPI   Source = "remoteAPI"
	SourceCached      Source = "cached"
)

// Day holds all computed prayer instants for a single calendar day.
// Immutable once constructed; cached copies are value snapshots.
type Day struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"` // local midnight in the day's timezone
	Fajr    time.Time `json:"fajr"`
	Sunrise time.Time `json:"sunrise"`
	Dhuhr   time.Time `json:"dhuhr"`
	Asr     time.Time `json:"asr"`
	Maghrib time.Time `json:"maghrib"`
	Isha    time.Time `json:"isha"`
	Imsak   time.Time `json:"imsak"` // Fajr + ImsakOffset
	Source  Source    `json:"source"`
}

// Instant pairs a prayer name with its computed time.
type Instant struct {
	Name Name
	Time time.Time
}

// Time returns the instant for the named prayer.
func (d Day) Time(n Name) time.Time {
	switch n {
	case Fajr:
		return d.Fajr
	case Sunrise:
		return d.Sunrise
	case Dhuhr:
		return d.Dhuhr
	case Asr:
		return d.Asr
	case Maghrib:
		return d.Maghrib
	case Isha:
		return d.Isha
	}
	return time.Time{}
}

// Instants returns all six instants in canonical order.
func (d Day) Instants() []Instant {
	out := make([]Instant, 0, len(All))
	for _, n := range All {
		out = append(out, Instant{Name: n, Time: d.Time(n)})
	}
	return out
}

// ObligatoryInstants returns the five obligatory prayers in canonical order.
func (d Day) ObligatoryInstants() []Instant {
	out := make([]Instant, 0, len(Obligatory))
	for _, n := range Obligatory {
		out = append(out, Instant{Name: n, Time: d.Time(n)})
	}
	return out
}

// Validate checks the strict chronological ordering invariant
// Fajr < Sunrise < Dhuhr < Asr < Maghrib < Isha and the Imsak derivation.
// A violation indicates an engine or parsing defect, not a user error.
func (d Day) Validate() error {
	inst := d.Instants()
	for i := 1; i < len(inst); i++ {
		if !inst[i-1].Time.Before(inst[i].Time) {
			return fmt.Errorf("prayer times out of order: %s (%s) >= %s (%s)",
				inst[i-1].Name, inst[i-1].Time.Format("15:04"),
				inst[i].Name, inst[i].Time.Format("15:04"))
		}
	}
	if !d.Imsak.Equal(d.Fajr.Add(ImsakOffset)) {
		return fmt.Errorf("imsak %s is not fajr %s - 10m",
			d.Imsak.Format("15:04:05"), d.Fajr.Format("15:04:05"))
	}
	return nil
}
