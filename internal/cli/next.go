package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/prayer"
)

var flagNextFormat string

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer, rolling over to tomorrow's Fajr\nafter Isha. Output is a single line suitable for status bars.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagNextFormat, "format", prayer.FormatFull,
		"Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template (e.g. '{{.Name}} in {{.Remaining}}')")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
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

	var tomorrow *prayer.Day
	if t, fetchErr := a.chain.PrayerTimes(ctx, a.now.AddDate(0, 0, 1), a.settings.Location, a.settings.Calc); fetchErr == nil {
		tomorrow = &t
	}

	next, ok := prayer.NextAcross(today, tomorrow, a.now)
	if !ok {
		// All of today passed and tomorrow could not be resolved: show
		// the last prayer with a "done" marker rather than crashing the
		// status bar.
		fmt.Printf("%s --:--", prayer.Isha.Display())
		return nil
	}

	fmt.Print(prayer.FormatOutput(next, a.now, flagNextFormat, display.ClockLayout(a.settings.TimeFormat)))
	return nil
}
