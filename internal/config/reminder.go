package config

import (
	"github.com/vakitapp/vakit/internal/prayer"
)

// scheduleBudget is the self-imposed cap on simultaneously pending
// notifications, kept below the 64-slot platform ceiling. CoverageDays plans
// against this budget; the schedule builder enforces its own maxCount.
const scheduleBudget = 60

// ReminderSettings are the user's notification preferences: a per-prayer
// toggle and minute offset for the five obligatory prayers, plus independent
// Imsak and Iftar reminders for Ramadan.
type ReminderSettings struct {
	// PrayerEnabled and PrayerOffsetMinutes are keyed by prayer.Name raw
	// values. Offsets are signed: 0 fires at prayer time, negative before.
	PrayerEnabled       map[string]bool `json:"prayer_enabled"`
	PrayerOffsetMinutes map[string]int  `json:"prayer_offset_minutes"`

	ImsakEnabled bool `json:"imsak_enabled"`
	// ImsakOffsetMinutes is a positive "minutes before Imsak" value.
	ImsakOffsetMinutes int `json:"imsak_offset_minutes"`

	IftarEnabled bool `json:"iftar_enabled"`
	// IftarOffsetMinutes is a positive "minutes before Iftar" value.
	IftarOffsetMinutes int `json:"iftar_offset_minutes"`

	// AlarmMode requests a more intrusive alert presentation.
	AlarmMode bool `json:"alarm_mode"`
}

// DefaultReminders enables all five obligatory prayers at prayer time and
// Ramadan reminders at 15 minutes before.
func DefaultReminders() ReminderSettings {
	enabled := make(map[string]bool, len(prayer.Obligatory))
	offsets := make(map[string]int, len(prayer.Obligatory))
	for _, n := range prayer.Obligatory {
		enabled[string(n)] = true
		offsets[string(n)] = 0
	}
	return ReminderSettings{
		PrayerEnabled:       enabled,
		PrayerOffsetMinutes: offsets,
		ImsakEnabled:        true,
		ImsakOffsetMinutes:  15,
		IftarEnabled:        true,
		IftarOffsetMinutes:  15,
	}
}

// EnabledSlotsPerDay counts the enabled notification slots per day:
// the five obligatory prayer flags plus the Imsak and Iftar flags (0-7).
func (r ReminderSettings) EnabledSlotsPerDay() int {
	count := 0
	for _, n := range prayer.Obligatory {
		if r.PrayerEnabled[string(n)] {
			count++
		}
	}
	if r.ImsakEnabled {
		count++
	}
	if r.IftarEnabled {
		count++
	}
	return count
}

// CoverageDays is the planning estimate of how many days of prayer data the
// schedule budget can cover: floor(budget / slots-per-day), 0 when nothing
// is enabled.
func (r ReminderSettings) CoverageDays() int {
	slots := r.EnabledSlotsPerDay()
	if slots == 0 {
		return 0
	}
	return scheduleBudget / slots
}
