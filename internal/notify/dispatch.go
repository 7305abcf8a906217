package notify

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// Pending describes one registered notification awaiting delivery.
type Pending struct {
	ID     string
	FireAt time.Time
}

// Dispatcher is the platform notification store. Registration is
// idempotent at the pending-set level: a scheduling pass cancels
// everything and re-registers the full plan.
type Dispatcher interface {
	CancelAll()
	Register(n Notification) error
	ListPending() []Pending
}

// DesktopDispatcher delivers notifications on the local desktop. Each
// registered notification arms a timer that fires a system notification
// at its instant; delivered and cancelled entries leave the pending set.
type DesktopDispatcher struct {
	// AppName is the notification title prefix.
	AppName string

	// AlarmMode switches delivery to the platform alert call, which
	// plays the system sound alongside the notification.
	AlarmMode bool

	mu      sync.Mutex
	timers  map[string]*pendingTimer
	present func(label string, alarm bool)
}

type pendingTimer struct {
	fireAt time.Time
	timer  *time.Timer
}

// NewDesktopDispatcher returns an empty dispatcher.
func NewDesktopDispatcher(appName string) *DesktopDispatcher {
	return &DesktopDispatcher{
		AppName: appName,
		timers:  make(map[string]*pendingTimer),
	}
}

// CancelAll stops every armed timer and clears the pending set.
func (d *DesktopDispatcher) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, pt := range d.timers {
		pt.timer.Stop()
		delete(d.timers, id)
	}
}

// Register arms a timer for the notification. A past fire instant is an
// error; a duplicate ID replaces the earlier registration.
func (d *DesktopDispatcher) Register(n Notification) error {
	delay := time.Until(n.FireAt)
	if delay <= 0 {
		return fmt.Errorf("register %s: fire instant %s already passed", n.ID, n.FireAt.Format(time.RFC3339))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.timers[n.ID]; ok {
		prev.timer.Stop()
	}
	id, label := n.ID, n.Label
	d.timers[n.ID] = &pendingTimer{
		fireAt: n.FireAt,
		timer: time.AfterFunc(delay, func() {
			d.deliver(id, label)
		}),
	}
	return nil
}

// ListPending snapshots the pending set sorted by fire time.
func (d *DesktopDispatcher) ListPending() []Pending {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Pending, 0, len(d.timers))
	for id, pt := range d.timers {
		out = append(out, Pending{ID: id, FireAt: pt.fireAt})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out
}

func (d *DesktopDispatcher) deliver(id, label string) {
	d.mu.Lock()
	delete(d.timers, id)
	present := d.present
	alarm := d.AlarmMode
	d.mu.Unlock()

	if present != nil {
		present(label, alarm)
		return
	}
	// Delivery failure is not actionable; the entry is gone either way.
	if alarm {
		_ = beeep.Alert(d.AppName, label, "")
		return
	}
	_ = beeep.Notify(d.AppName, label, "")
}
