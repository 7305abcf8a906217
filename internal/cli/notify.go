package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/display"
	"github.com/vakitapp/vakit/internal/notify"
)

var (
	flagNotifyMax  int
	flagNotifyList bool
)

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Run the reminder daemon",
		Long:  "Register desktop notifications for the reminder plan and keep them\nfresh with a periodic rescheduling pass. Runs until interrupted.",
		RunE:  runNotify,
	}

	cmd.Flags().IntVar(&flagNotifyMax, "max", notify.DefaultMaxPending,
		fmt.Sprintf("Maximum pending notifications (hard platform ceiling: %d)", notify.PlatformPendingLimit))
	cmd.Flags().BoolVar(&flagNotifyList, "list", false,
		"Run one scheduling pass, print the pending notifications, and exit")

	return cmd
}

func runNotify(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	dispatcher := notify.NewDesktopDispatcher("vakit")
	dispatcher.AlarmMode = a.settings.Reminders.AlarmMode
	scheduler := notify.NewScheduler(a.chain, dispatcher, a.log, flagNotifyMax)

	if flagNotifyList {
		return listPending(cmd.Context(), a, dispatcher, scheduler)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Info().Msg("reminder daemon started")
	err = scheduler.Run(ctx, func() (*config.Settings, error) {
		settings, loadErr := config.Load()
		if loadErr != nil {
			return nil, loadErr
		}
		// The location and calculation flags given at startup stay in
		// effect; only reminder toggles are re-read live.
		merged := a.settings
		merged.Reminders = settings.Reminders
		dispatcher.AlarmMode = merged.Reminders.AlarmMode
		return &merged, nil
	})
	dispatcher.CancelAll()
	a.log.Info().Msg("reminder daemon stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// listPending runs a single scheduling pass, prints what the daemon would
// hold pending, and tears the registrations back down before returning.
func listPending(ctx context.Context, a *app, dispatcher *notify.DesktopDispatcher, scheduler *notify.Scheduler) error {
	defer a.chain.Wait()
	defer dispatcher.CancelAll()

	registered, err := scheduler.Reschedule(ctx, a.settings)
	if err != nil {
		return err
	}

	pending := dispatcher.ListPending()
	if len(pending) == 0 {
		fmt.Println("No notifications pending.")
		fmt.Println("Enable some with e.g. 'vakit config set reminders.fajr true'.")
		return nil
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Boldf("%d pending notifications", registered))
	fmt.Println()

	ids := make([]string, 0, len(pending))
	fireAts := make([]time.Time, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.ID)
		fireAts = append(fireAts, p.FireAt)
	}
	fmt.Print(display.PendingList(ids, fireAts, a.now))
	fmt.Println()
	return nil
}
