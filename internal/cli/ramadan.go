package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/hijri"
	"github.com/vakitapp/vakit/internal/ramadan"
)

var flagHijriYear int

func newRamadanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ramadan",
		Short: "Show the Ramadan fasting calendar",
		Long:  "Display the Imsak/Iftar calendar for Ramadan of the current Hijri year\n(or of --hijri-year), plus the current fasting state when applicable.",
		RunE:  runRamadan,
	}

	cmd.Flags().IntVar(&flagHijriYear, "hijri-year", 0, "Hijri year (default: current)")

	return cmd
}

func runRamadan(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.chain.Wait()

	year := flagHijriYear
	if year == 0 {
		current, err := hijri.CurrentYear(a.now)
		if err != nil {
			return err
		}
		year = current
		// Past Shawwal the interesting Ramadan is next year's.
		if h, err := hijri.FromTime(a.now); err == nil && h.Month > hijri.RamadanMonth {
			year++
		}
	}

	start, end, err := hijri.RamadanRange(year)
	if err != nil {
		return err
	}
	count := int(end.Sub(start).Hours()/24 + 0.5)

	tz := a.settings.Location.TimezoneLocation()
	from := ramadanWindowStart(start, tz)

	prayerDays, err := a.chain.Range(cmd.Context(), from, count, a.settings.Location, a.settings.Calc)
	if err != nil {
		return err
	}
	days, err := ramadan.BuildDays(prayerDays)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return fmt.Errorf("no Ramadan days could be resolved for %d AH", year)
	}

	fmt.Println()
	fmt.Printf("  %s %s\n", display.Bold(fmt.Sprintf("Ramadan %d", year)), display.Gray(a.settings.Location.DisplayName()))
	fmt.Println()

	if today, ok := ramadan.Today(days, a.now); ok {
		state := ramadan.StateAt(today.Imsak, today.Iftar, a.now)
		fmt.Printf("  Day %d: %s\n", today.DayNumber,
			display.RamadanStateLine(state, today, a.now, a.settings.TimeFormat))
		fmt.Println()
	}

	fmt.Print(display.RamadanTable(days, a.now, a.settings.TimeFormat))
	fmt.Println()
	return nil
}

// ramadanWindowStart anchors the UTC-midnight range start on the same
// calendar day in the display timezone. Converting the instant with In
// would slide zones west of UTC to the previous evening and clip the
// last day off the fetched window.
func ramadanWindowStart(start time.Time, tz *time.Location) time.Time {
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, tz)
}
