package notify

import (
	"strings"
	"testing"
	"time"
)

func futureNotification(id string, in time.Duration) Notification {
	return Notification{
		ID:     id,
		Label:  "test",
		FireAt: time.Now().Add(in),
		Kind:   KindPrayer,
	}
}

func TestDesktopDispatcher_RegisterAndList(t *testing.T) {
	d := NewDesktopDispatcher("vakit")
	defer d.CancelAll()

	if err := d.Register(futureNotification("b", 2*time.Hour)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := d.Register(futureNotification("a", time.Hour)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	pending := d.ListPending()
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].ID != "a" || pending[1].ID != "b" {
		t.Errorf("pending order = %s, %s; want a, b", pending[0].ID, pending[1].ID)
	}
}

func TestDesktopDispatcher_RejectsPastInstant(t *testing.T) {
	d := NewDesktopDispatcher("vakit")
	defer d.CancelAll()

	err := d.Register(futureNotification("past", -time.Minute))
	if err == nil {
		t.Fatal("expected error for past fire instant")
	}
	if !strings.Contains(err.Error(), "already passed") {
		t.Errorf("error = %v, want mention of passed instant", err)
	}
	if len(d.ListPending()) != 0 {
		t.Error("failed registration must not enter the pending set")
	}
}

func TestDesktopDispatcher_DuplicateIDReplaces(t *testing.T) {
	d := NewDesktopDispatcher("vakit")
	defer d.CancelAll()

	if err := d.Register(futureNotification("x", time.Hour)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	replacement := futureNotification("x", 3*time.Hour)
	if err := d.Register(replacement); err != nil {
		t.Fatalf("Register replacement: %v", err)
	}

	pending := d.ListPending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	if !pending[0].FireAt.Equal(replacement.FireAt) {
		t.Errorf("pending fireAt = %v, want replacement's %v", pending[0].FireAt, replacement.FireAt)
	}
}

func TestDesktopDispatcher_AlarmModeReachesDelivery(t *testing.T) {
	type delivered struct {
		label string
		alarm bool
	}
	got := make(chan delivered, 1)

	d := NewDesktopDispatcher("vakit")
	defer d.CancelAll()
	d.present = func(label string, alarm bool) {
		got <- delivered{label, alarm}
	}
	d.AlarmMode = true

	if err := d.Register(futureNotification("soon", 20*time.Millisecond)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	select {
	case del := <-got:
		if !del.alarm {
			t.Error("delivery ignored alarm mode")
		}
		if del.label != "test" {
			t.Errorf("label = %q, want %q", del.label, "test")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification never delivered")
	}

	if got := len(d.ListPending()); got != 0 {
		t.Errorf("pending after delivery = %d, want 0", got)
	}
}

func TestDesktopDispatcher_CancelAll(t *testing.T) {
	d := NewDesktopDispatcher("vakit")

	for _, id := range []string{"a", "b", "c"} {
		if err := d.Register(futureNotification(id, time.Hour)); err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}
	d.CancelAll()
	if got := len(d.ListPending()); got != 0 {
		t.Errorf("pending after CancelAll = %d, want 0", got)
	}
}
