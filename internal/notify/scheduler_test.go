package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vakitapp/vakit/internal/api"
	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/cache"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/provider"
)

type stubEngine struct{}

func (stubEngine) Compute(coords astro.Coordinates, date time.Time, params astro.Params) (astro.RawTimes, error) {
	at := func(h, m int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
	}
	return astro.RawTimes{
		Fajr:    at(5, 42),
		Sunrise: at(7, 10),
		Dhuhr:   at(12, 30),
		Asr:     at(15, 32),
		Maghrib: at(17, 55),
		Isha:    at(19, 22),
	}, nil
}

type recordingDispatcher struct {
	cancels    int
	registered []Notification
	failID     string
}

func (r *recordingDispatcher) CancelAll() {
	r.cancels++
	r.registered = nil
}

func (r *recordingDispatcher) Register(n Notification) error {
	if n.ID == r.failID {
		return &StubRegisterError{ID: n.ID}
	}
	r.registered = append(r.registered, n)
	return nil
}

func (r *recordingDispatcher) ListPending() []Pending {
	out := make([]Pending, 0, len(r.registered))
	for _, n := range r.registered {
		out = append(out, Pending{ID: n.ID, FireAt: n.FireAt})
	}
	return out
}

type StubRegisterError struct{ ID string }

func (e *StubRegisterError) Error() string { return "stub registration failure: " + e.ID }

func newTestScheduler(t *testing.T, dispatcher Dispatcher, maxPending int) *Scheduler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := api.NewClient()
	client.BaseURL = srv.URL

	chain := provider.NewFallback(cache.New(), provider.NewLocal(stubEngine{}),
		provider.NewRemote(client), zerolog.Nop())
	chain.CrossValidate = false

	s := NewScheduler(chain, dispatcher, zerolog.Nop(), maxPending)
	// Pin the clock before the first slot of the day so every candidate
	// survives the future-only filter.
	s.now = func() time.Time {
		return time.Date(2026, 2, 20, 1, 0, 0, 0, time.UTC)
	}
	return s
}

func TestScheduler_Reschedule(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	s := newTestScheduler(t, dispatcher, 0)

	settings := config.Default()
	registered, err := s.Reschedule(context.Background(), settings)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	if dispatcher.cancels != 1 {
		t.Errorf("cancels = %d, want 1", dispatcher.cancels)
	}
	if registered == 0 || registered > DefaultMaxPending {
		t.Errorf("registered = %d, want 1..%d", registered, DefaultMaxPending)
	}
	if len(dispatcher.registered) != registered {
		t.Errorf("dispatcher holds %d, reported %d", len(dispatcher.registered), registered)
	}
	// Default settings enable 7 slots, so 8 coverage days overfill the
	// 50 budget and truncation applies.
	if registered != DefaultMaxPending {
		t.Errorf("registered = %d, want the full %d budget", registered, DefaultMaxPending)
	}
}

func TestScheduler_NoSlotsClearsPending(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	s := newTestScheduler(t, dispatcher, 0)

	settings := config.Default()
	settings.Reminders = config.ReminderSettings{}

	registered, err := s.Reschedule(context.Background(), settings)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if registered != 0 {
		t.Errorf("registered = %d, want 0", registered)
	}
	if dispatcher.cancels != 1 {
		t.Errorf("cancels = %d, want 1", dispatcher.cancels)
	}
}

func TestScheduler_RegistrationFailureDoesNotAbort(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	s := newTestScheduler(t, dispatcher, 0)

	settings := config.Default()
	// Find an identity the first pass will produce, then fail it.
	if _, err := s.Reschedule(context.Background(), settings); err != nil {
		t.Fatalf("priming pass: %v", err)
	}
	if len(dispatcher.registered) < 2 {
		t.Fatal("priming pass registered too little")
	}
	dispatcher.failID = dispatcher.registered[0].ID

	registered, err := s.Reschedule(context.Background(), settings)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if registered != DefaultMaxPending-1 {
		t.Errorf("registered = %d, want %d", registered, DefaultMaxPending-1)
	}
}

func TestScheduler_BudgetClamp(t *testing.T) {
	if s := NewScheduler(nil, nil, zerolog.Nop(), 0); s.maxPending != DefaultMaxPending {
		t.Errorf("maxPending = %d, want default %d", s.maxPending, DefaultMaxPending)
	}
	if s := NewScheduler(nil, nil, zerolog.Nop(), 1000); s.maxPending != PlatformPendingLimit {
		t.Errorf("maxPending = %d, want ceiling %d", s.maxPending, PlatformPendingLimit)
	}
	if s := NewScheduler(nil, nil, zerolog.Nop(), 20); s.maxPending != 20 {
		t.Errorf("maxPending = %d, want 20", s.maxPending)
	}
}
