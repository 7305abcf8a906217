package ramadan

import (
	"testing"
	"time"

	"github.com/vakitapp/vakit/internal/prayer"
)

func prayerDay(y int, m time.Month, d int) prayer.Day {
	at := func(h, min int) time.Time {
		return time.Date(y, m, d, h, min, 0, 0, time.UTC)
	}
	fajr := at(5, 42)
	return prayer.Day{
		ID:      "test",
		Date:    at(0, 0),
		Fajr:    fajr,
		Sunrise: at(7, 10),
		Dhuhr:   at(12, 30),
		Asr:     at(15, 32),
		Maghrib: at(17, 55),
		Isha:    at(19, 22),
		Imsak:   fajr.Add(prayer.ImsakOffset),
		Source:  prayer.SourceLocalEngine,
	}
}

func TestStateAt(t *testing.T) {
	imsak := time.Date(2026, 2, 20, 5, 32, 0, 0, time.UTC)
	iftar := time.Date(2026, 2, 20, 17, 55, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want State
	}{
		{"midnight", imsak.Add(-5 * time.Hour), StateBeforeSuhoor},
		{"minute before imsak", imsak.Add(-time.Minute), StateBeforeSuhoor},
		{"exactly imsak", imsak, StateFasting},
		{"midday", imsak.Add(6 * time.Hour), StateFasting},
		{"minute before iftar", iftar.Add(-time.Minute), StateFasting},
		{"exactly iftar", iftar, StateAfterIftar},
		{"evening", iftar.Add(3 * time.Hour), StateAfterIftar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateAt(imsak, iftar, tt.now); got != tt.want {
				t.Errorf("StateAt = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildDays_RamadanOnly(t *testing.T) {
	// Ramadan 1447 begins around 2026-02-18; 2026-02-16 is Shaban and
	// should be dropped.
	input := []prayer.Day{
		prayerDay(2026, 2, 16),
		prayerDay(2026, 2, 20),
		prayerDay(2026, 2, 21),
	}

	days, err := BuildDays(input)
	if err != nil {
		t.Fatalf("BuildDays: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}

	for i, d := range days {
		if d.HijriDate.Month != 9 {
			t.Errorf("day %d hijri month = %d, want 9", i, d.HijriDate.Month)
		}
		if d.DayNumber != d.HijriDate.Day {
			t.Errorf("day %d number = %d, want %d", i, d.DayNumber, d.HijriDate.Day)
		}
		if !d.Iftar.Equal(input[i+1].Maghrib) {
			t.Errorf("day %d iftar = %v, want maghrib %v", i, d.Iftar, input[i+1].Maghrib)
		}
		if !d.Imsak.Equal(input[i+1].Imsak) {
			t.Errorf("day %d imsak = %v, want %v", i, d.Imsak, input[i+1].Imsak)
		}
	}
	if days[1].DayNumber != days[0].DayNumber+1 {
		t.Errorf("day numbers %d, %d are not consecutive", days[0].DayNumber, days[1].DayNumber)
	}
}

func TestCurrentState(t *testing.T) {
	days, err := BuildDays([]prayer.Day{prayerDay(2026, 2, 20)})
	if err != nil {
		t.Fatalf("BuildDays: %v", err)
	}

	noon := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	if got := CurrentState(days, noon); got != StateFasting {
		t.Errorf("state at noon = %s, want fasting", got)
	}

	otherDay := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	if got := CurrentState(days, otherDay); got != StateNotRamadan {
		t.Errorf("state outside calendar = %s, want notRamadan", got)
	}
}

func TestUntilIftar(t *testing.T) {
	days, err := BuildDays([]prayer.Day{prayerDay(2026, 2, 20)})
	if err != nil {
		t.Fatalf("BuildDays: %v", err)
	}

	now := time.Date(2026, 2, 20, 16, 55, 0, 0, time.UTC)
	left, ok := UntilIftar(days, now)
	if !ok {
		t.Fatal("expected fasting state")
	}
	if left != time.Hour {
		t.Errorf("until iftar = %v, want 1h", left)
	}

	evening := time.Date(2026, 2, 20, 20, 0, 0, 0, time.UTC)
	if _, ok := UntilIftar(days, evening); ok {
		t.Error("expected not fasting after iftar")
	}
}

func TestStateDisplay(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateBeforeSuhoor, "Before Suhoor"},
		{StateFasting, "Fasting"},
		{StateAfterIftar, "After Iftar"},
		{StateNotRamadan, "Not Ramadan"},
	}
	for _, tt := range tests {
		if got := tt.state.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
