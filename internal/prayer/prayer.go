// Package prayer holds the core prayer-time domain types and the
// current/next-prayer reasoning. All functions here are pure: they take a
// computed Day (or two, around midnight) and an instant, and never do I/O.
package prayer

import "time"

// Current returns the prayer period active at now: the last instant of the
// day that is at or before now. The second return is false when now is
// before Fajr (no period has started yet).
func Current(d Day, now time.Time) (Name, bool) {
	var current Name
	found := false
	for _, inst := range d.Instants() {
		if !inst.Time.After(now) {
			current = inst.Name
			found = true
		}
	}
	return current, found
}

// Next returns the first instant of the day strictly after now.
// The second return is false when now is at or past Isha; the caller must
// supply tomorrow's data to resolve that case (see NextAcross).
func Next(d Day, now time.Time) (Instant, bool) {
	for _, inst := range d.Instants() {
		if inst.Time.After(now) {
			return inst, true
		}
	}
	return Instant{}, false
}

// NextAcross resolves the next prayer across the midnight boundary.
// When all of today's prayers have passed it falls over to tomorrow's Fajr,
// if tomorrow's data is available.
func NextAcross(today Day, tomorrow *Day, now time.Time) (Instant, bool) {
	if inst, ok := Next(today, now); ok {
		return inst, true
	}
	if tomorrow != nil {
		return Instant{Name: Fajr, Time: tomorrow.Fajr}, true
	}
	return Instant{}, false
}

// UntilNext returns the duration from now until the next prayer, under the
// same availability conditions as NextAcross.
func UntilNext(today Day, tomorrow *Day, now time.Time) (time.Duration, bool) {
	inst, ok := NextAcross(today, tomorrow, now)
	if !ok {
		return 0, false
	}
	return inst.Time.Sub(now), true
}
