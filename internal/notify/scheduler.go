package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/provider"
)

// rescheduleSpec is how often the daemon rebuilds the pending set. Hourly
// keeps the plan fresh across midnight and settings edits without hammering
// the providers; the cache absorbs repeat fetches anyway.
const rescheduleSpec = "@every 1h"

// Scheduler owns the scheduling pass: fetch enough days to fill the
// budget, build the plan, then cancel-all and re-register. Passes are
// serialized with a mutex; the platform pending set cannot survive two
// interleaved passes.
type Scheduler struct {
	chain      *provider.Fallback
	dispatcher Dispatcher
	log        zerolog.Logger
	maxPending int

	mu   sync.Mutex
	cron *cron.Cron
	now  func() time.Time
}

// NewScheduler wires the pass. maxPending <= 0 selects DefaultMaxPending;
// values above the platform ceiling are clamped to it.
func NewScheduler(chain *provider.Fallback, dispatcher Dispatcher, log zerolog.Logger, maxPending int) *Scheduler {
	if maxPending <= 0 {
		maxPending = DefaultMaxPending
	}
	if maxPending > PlatformPendingLimit {
		maxPending = PlatformPendingLimit
	}
	return &Scheduler{
		chain:      chain,
		dispatcher: dispatcher,
		log:        log,
		maxPending: maxPending,
		now:        time.Now,
	}
}

// Reschedule runs one full pass for the settings snapshot. Registration
// failures are logged and skipped; only a failed fetch aborts the pass,
// leaving the previous pending set intact.
func (s *Scheduler) Reschedule(ctx context.Context, settings config.Settings) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	coverage := settings.Reminders.CoverageDays()
	if coverage == 0 {
		s.dispatcher.CancelAll()
		s.log.Info().Msg("no reminder slots enabled, cleared pending notifications")
		return 0, nil
	}

	days, err := s.chain.Range(ctx, now, coverage, settings.Location, settings.Calc)
	if err != nil {
		return 0, fmt.Errorf("reschedule: %w", err)
	}

	plan := BuildSchedule(days, settings.Reminders, s.maxPending, now)

	s.dispatcher.CancelAll()
	registered := 0
	for _, n := range plan {
		if err := s.dispatcher.Register(n); err != nil {
			s.log.Warn().Err(err).Str("id", n.ID).Msg("notification registration failed")
			continue
		}
		registered++
	}

	s.log.Info().
		Int("days", len(days)).
		Int("planned", len(plan)).
		Int("registered", registered).
		Msg("notification schedule rebuilt")
	return registered, nil
}

// Run performs an immediate pass, then repeats on a timer until ctx is
// cancelled. Settings are re-loaded each pass so config edits take effect
// without a restart.
func (s *Scheduler) Run(ctx context.Context, loadSettings func() (*config.Settings, error)) error {
	pass := func() {
		settings, err := loadSettings()
		if err != nil {
			s.log.Error().Err(err).Msg("could not load settings, skipping pass")
			return
		}
		if _, err := s.Reschedule(ctx, *settings); err != nil {
			s.log.Error().Err(err).Msg("scheduling pass failed")
		}
	}
	pass()

	c := cron.New()
	if _, err := c.AddFunc(rescheduleSpec, pass); err != nil {
		return fmt.Errorf("notify daemon: %w", err)
	}
	c.Start()
	s.cron = c

	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}
