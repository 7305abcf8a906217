package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/vakitapp/vakit/internal/prayer"
	"github.com/vakitapp/vakit/internal/ramadan"
)

// ClockLayout maps the config time_format value to a time layout.
func ClockLayout(timeFormat string) string {
	if timeFormat == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}

// DayTable renders one day's times. Passed instants are dimmed and the
// next upcoming one carries the accent; outside the day both decorations
// are absent.
func DayTable(d prayer.Day, now time.Time, timeFormat string) string {
	layout := ClockLayout(timeFormat)

	next, hasNext := prayer.Next(d, now)

	t := NewTable("Prayer", "Time")
	addRow := func(name, clock string, at time.Time) {
		switch {
		case hasNext && at.Equal(next.Time):
			t.AddAccentRow(name, clock)
		case !at.After(now):
			t.AddDimRow(name, clock)
		default:
			t.AddRow(name, clock)
		}
	}

	addRow("Imsak", d.Imsak.Format(layout), d.Imsak)
	for _, inst := range d.Instants() {
		addRow(inst.Name.Display(), inst.Time.Format(layout), inst.Time)
	}
	return t.Render()
}

// DayHeader renders the date line above a day table.
func DayHeader(d prayer.Day, locationName string) string {
	return fmt.Sprintf("  %s %s\n", Boldf("%s", d.Date.Format("Monday, 2 January 2006")), Gray("("+locationName+")"))
}

// ListTable renders a multi-day overview, one row per day, highlighting
// today when it appears in the range.
func ListTable(days []prayer.Day, now time.Time, timeFormat string) string {
	layout := ClockLayout(timeFormat)

	t := NewTable("Date", "Imsak", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha")
	for _, d := range days {
		row := []string{
			d.Date.Format("Mon 02 Jan"),
			d.Imsak.Format(layout),
			d.Fajr.Format(layout),
			d.Sunrise.Format(layout),
			d.Dhuhr.Format(layout),
			d.Asr.Format(layout),
			d.Maghrib.Format(layout),
			d.Isha.Format(layout),
		}
		if sameDate(d.Date, now) {
			t.AddAccentRow(row...)
		} else {
			t.AddRow(row...)
		}
	}
	return t.Render()
}

// RamadanTable renders the fasting calendar. Today's row is accented;
// past days are dimmed.
func RamadanTable(days []ramadan.Day, now time.Time, timeFormat string) string {
	layout := ClockLayout(timeFormat)

	t := NewTable("Day", "Date", "Imsak", "Iftar", "Fast")
	for _, d := range days {
		fast := prayer.FormatRemaining(d.Iftar.Sub(d.Imsak))
		row := []string{
			fmt.Sprintf("%d", d.DayNumber),
			d.Date.Format("Mon 02 Jan"),
			d.Imsak.Format(layout),
			d.Iftar.Format(layout),
			fast,
		}
		switch {
		case sameDate(d.Date, now):
			t.AddAccentRow(row...)
		case d.Iftar.Before(now):
			t.AddDimRow(row...)
		default:
			t.AddMagentaRow(row...)
		}
	}
	return t.Render()
}

// RamadanStateLine renders the current fasting state with time context.
func RamadanStateLine(state ramadan.State, day ramadan.Day, now time.Time, timeFormat string) string {
	layout := ClockLayout(timeFormat)
	switch state {
	case ramadan.StateBeforeSuhoor:
		return fmt.Sprintf("%s until Imsak at %s",
			Yellow(prayer.FormatRemaining(day.Imsak.Sub(now))), day.Imsak.Format(layout))
	case ramadan.StateFasting:
		return fmt.Sprintf("%s, %s until Iftar at %s",
			Magenta("Fasting"), Yellow(prayer.FormatRemaining(day.Iftar.Sub(now))), day.Iftar.Format(layout))
	case ramadan.StateAfterIftar:
		return Green("Iftar has passed, the fast is complete")
	default:
		return Gray("Not Ramadan")
	}
}

// PendingList renders registered notifications as lines, not a table;
// identities are long and the terminal narrow.
func PendingList(ids []string, fireAts []time.Time, now time.Time) string {
	var sb strings.Builder
	for i, id := range ids {
		sb.WriteString(fmt.Sprintf("  %s  %s (%s)\n",
			Gray(fireAts[i].Format("2006-01-02 15:04")),
			id,
			prayer.FormatRemaining(fireAts[i].Sub(now))))
	}
	return sb.String()
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
