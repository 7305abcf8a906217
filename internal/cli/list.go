package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/prayer"
)

const defaultListDays = 7

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days starting today (default: 7).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := defaultListDays
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid day count %q: must be a positive integer", args[0])
				}
				days = n
			}
			return runList(cmd, days)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		Long:  "Alias for 'list 7'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		Long:  "Alias for 'list 30'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, 30)
		},
	}
}

func runList(cmd *cobra.Command, count int) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.chain.Wait()

	days, err := a.chain.Range(cmd.Context(), a.now, count, a.settings.Location, a.settings.Calc)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printListJSON(a, days)
	}

	fmt.Println()
	fmt.Printf("  %s %s\n", display.Bold("Prayer Times"), display.Gray(a.settings.Location.DisplayName()))
	fmt.Println()
	fmt.Print(display.ListTable(days, a.now, a.settings.TimeFormat))
	fmt.Println()
	return nil
}

type listDayJSON struct {
	Date    string            `json:"date"`
	Source  string            `json:"source"`
	Timings map[string]string `json:"timings"`
}

func printListJSON(a *app, days []prayer.Day) error {
	layout := display.ClockLayout(a.settings.TimeFormat)

	out := make([]listDayJSON, 0, len(days))
	for _, d := range days {
		timings := map[string]string{"imsak": d.Imsak.Format(layout)}
		for _, inst := range d.Instants() {
			timings[string(inst.Name)] = inst.Time.Format(layout)
		}
		out = append(out, listDayJSON{
			Date:    d.Date.Format("2006-01-02"),
			Source:  string(d.Source),
			Timings: timings,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
