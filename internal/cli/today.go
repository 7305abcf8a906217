package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/prayer"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's prayer times",
		Long:  "Display today's full prayer schedule with the next prayer highlighted.\nThis is also the default when vakit is run without a subcommand.",
		RunE:  runToday,
	}
}

func runToday(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.chain.Wait()

	ctx := cmd.Context()
	today, err := a.chain.PrayerTimes(ctx, a.now, a.settings.Location, a.settings.Calc)
	if err != nil {
		return err
	}

	// Tomorrow matters only after Isha; a failed fetch falls back to a
	// same-day-only answer.
	var tomorrow *prayer.Day
	if t, err := a.chain.PrayerTimes(ctx, a.now.AddDate(0, 0, 1), a.settings.Location, a.settings.Calc); err == nil {
		tomorrow = &t
	}

	hijriDate, hijriErr := a.chain.HijriDate(a.now)

	if FlagJSON {
		return printTodayJSON(a, today, tomorrow, hijriErr == nil, hijriDate)
	}

	layout := display.ClockLayout(a.settings.TimeFormat)

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Prayer Times"))
	fmt.Println()
	fmt.Print(display.DayHeader(today, a.settings.Location.DisplayName()))
	if hijriErr == nil {
		fmt.Printf("  %s\n", display.Gray(hijriDate.String()))
	}
	fmt.Println()
	fmt.Print(display.DayTable(today, a.now, a.settings.TimeFormat))
	fmt.Println()

	if current, ok := prayer.Current(today, a.now); ok {
		fmt.Printf("  Current: %s\n", current.Display())
	}
	if next, ok := prayer.NextAcross(today, tomorrow, a.now); ok {
		remaining := prayer.FormatRemaining(next.Time.Sub(a.now))
		fmt.Printf("  Next: %s at %s (%s)\n",
			display.Accent(next.Name.Display()), next.Time.Format(layout), remaining)
	}
	fmt.Println()
	return nil
}

// todayJSON is the JSON output structure for the today command.
type todayJSON struct {
	Location string            `json:"location"`
	Date     string            `json:"date"`
	Hijri    string            `json:"hijri,omitempty"`
	Source   string            `json:"source"`
	Timings  map[string]string `json:"timings"`
	Current  string            `json:"current,omitempty"`
	Next     *nextJSON         `json:"next,omitempty"`
}

type nextJSON struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

func printTodayJSON(a *app, today prayer.Day, tomorrow *prayer.Day, hasHijri bool, hijriDate fmt.Stringer) error {
	layout := display.ClockLayout(a.settings.TimeFormat)

	timings := map[string]string{"imsak": today.Imsak.Format(layout)}
	for _, inst := range today.Instants() {
		timings[string(inst.Name)] = inst.Time.Format(layout)
	}

	out := todayJSON{
		Location: a.settings.Location.DisplayName(),
		Date:     today.Date.Format("2006-01-02"),
		Source:   string(today.Source),
		Timings:  timings,
	}
	if hasHijri {
		out.Hijri = hijriDate.String()
	}
	if current, ok := prayer.Current(today, a.now); ok {
		out.Current = string(current)
	}
	if next, ok := prayer.NextAcross(today, tomorrow, a.now); ok {
		out.Next = &nextJSON{
			Prayer:    string(next.Name),
			Time:      next.Time.Format(layout),
			Remaining: prayer.FormatRemaining(next.Time.Sub(a.now)),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
