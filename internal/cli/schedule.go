package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/notify"
)

var flagScheduleMax int

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the reminder plan without registering anything",
		Long:  "Build the notification schedule from current settings and print it.\nThe plan covers as many days as the budget allows and is capped at --max entries.",
		RunE:  runSchedule,
	}

	cmd.Flags().IntVar(&flagScheduleMax, "max", notify.DefaultMaxPending,
		fmt.Sprintf("Maximum pending notifications (hard platform ceiling: %d)", notify.PlatformPendingLimit))

	return cmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.chain.Wait()

	reminders := a.settings.Reminders
	coverage := reminders.CoverageDays()
	if coverage == 0 {
		fmt.Println("No reminder slots enabled; nothing to schedule.")
		fmt.Println("Enable some with e.g. 'vakit config set reminders.fajr true'.")
		return nil
	}

	maxPending := flagScheduleMax
	if maxPending > notify.PlatformPendingLimit {
		maxPending = notify.PlatformPendingLimit
	}

	days, err := a.chain.Range(cmd.Context(), a.now, coverage, a.settings.Location, a.settings.Calc)
	if err != nil {
		return err
	}
	plan := notify.BuildSchedule(days, reminders, maxPending, a.now)

	if FlagJSON {
		return printScheduleJSON(plan)
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Boldf("Reminder plan: %d notifications over %d days", len(plan), coverage))
	fmt.Printf("  %s\n", display.Gray(fmt.Sprintf("%d slots/day, budget %d", reminders.EnabledSlotsPerDay(), maxPending)))
	fmt.Println()

	ids := make([]string, 0, len(plan))
	fireAts := make([]time.Time, 0, len(plan))
	for _, n := range plan {
		ids = append(ids, n.ID)
		fireAts = append(fireAts, n.FireAt)
	}
	fmt.Print(display.PendingList(ids, fireAts, a.now))
	fmt.Println()
	return nil
}

type scheduleJSON struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	FireAt        string `json:"fire_at"`
	Kind          string `json:"kind"`
	TimeSensitive bool   `json:"time_sensitive"`
}

func printScheduleJSON(plan []notify.Notification) error {
	out := make([]scheduleJSON, 0, len(plan))
	for _, n := range plan {
		out = append(out, scheduleJSON{
			ID:            n.ID,
			Label:         n.Label,
			FireAt:        n.FireAt.Format(time.RFC3339),
			Kind:          string(n.Kind),
			TimeSensitive: n.TimeSensitive,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
