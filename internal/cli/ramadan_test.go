package cli

import (
	"testing"
	"time"
)

func TestRamadanWindowStart(t *testing.T) {
	// 1 Ramadan 1447 as the Hijri library reports it, midnight UTC.
	start := time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		zone string
	}{
		{"east of UTC", "Europe/Istanbul"},
		{"west of UTC", "America/New_York"},
		{"utc", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, err := time.LoadLocation(tt.zone)
			if err != nil {
				t.Fatalf("LoadLocation(%q): %v", tt.zone, err)
			}

			got := ramadanWindowStart(start, tz)

			y, m, d := got.Date()
			if y != 2026 || m != time.February || d != 18 {
				t.Errorf("window start landed on %04d-%02d-%02d, want 2026-02-18", y, m, d)
			}
			if got.Location() != tz {
				t.Errorf("window start in %v, want %v", got.Location(), tz)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("window start at %02d:%02d, want midnight", got.Hour(), got.Minute())
			}
		})
	}
}
