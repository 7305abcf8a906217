package hijri

import (
	"testing"
	"time"
)

func TestFromTime_KnownDates(t *testing.T) {
	tests := []struct {
		gregorian time.Time
		wantYear  int
		wantMonth int
	}{
		// Umm al-Qura reference points.
		{time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC), 1447, 9},
		{time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC), 1446, 9},
		{time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), 1448, 3},
	}

	for _, tt := range tests {
		got, err := FromTime(tt.gregorian)
		if err != nil {
			t.Errorf("FromTime(%v): %v", tt.gregorian, err)
			continue
		}
		if got.Year != tt.wantYear || got.Month != tt.wantMonth {
			t.Errorf("FromTime(%v) = %d/%d, want %d/%d",
				tt.gregorian.Format("2006-01-02"), got.Month, got.Year, tt.wantMonth, tt.wantYear)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	h, err := FromTime(orig)
	if err != nil {
		t.Fatalf("FromTime: %v", err)
	}
	g, err := h.ToGregorian()
	if err != nil {
		t.Fatalf("ToGregorian: %v", err)
	}
	if g.Year() != orig.Year() || g.Month() != orig.Month() || g.Day() != orig.Day() {
		t.Errorf("round trip %v -> %v -> %v", orig.Format("2006-01-02"), h, g.Format("2006-01-02"))
	}
}

func TestIsRamadan(t *testing.T) {
	if !(Date{Day: 1, Month: 9, Year: 1447}).IsRamadan() {
		t.Error("month 9 should be Ramadan")
	}
	if (Date{Day: 1, Month: 10, Year: 1447}).IsRamadan() {
		t.Error("month 10 should not be Ramadan")
	}
}

func TestMonthNames(t *testing.T) {
	d := Date{Day: 11, Month: 9, Year: 1447}
	if d.MonthName() != "Ramadan" {
		t.Errorf("MonthName = %q", d.MonthName())
	}
	if d.MonthNameTurkish() != "Ramazan" {
		t.Errorf("MonthNameTurkish = %q", d.MonthNameTurkish())
	}
	if d.String() != "11 Ramadan 1447 AH" {
		t.Errorf("String = %q", d.String())
	}

	bad := Date{Day: 1, Month: 13, Year: 1447}
	if bad.MonthName() != "Month 13" {
		t.Errorf("out-of-range MonthName = %q", bad.MonthName())
	}
}

func TestRamadanRange(t *testing.T) {
	for _, year := range []int{1446, 1447, 1448} {
		start, end, err := RamadanRange(year)
		if err != nil {
			t.Fatalf("RamadanRange(%d): %v", year, err)
		}

		days := int(end.Sub(start).Hours() / 24)
		if days != 29 && days != 30 {
			t.Errorf("RamadanRange(%d) spans %d days, want 29 or 30", year, days)
		}

		first, err := FromTime(start.Add(12 * time.Hour))
		if err != nil {
			t.Fatalf("FromTime(start): %v", err)
		}
		if first.Month != RamadanMonth || first.Day != 1 {
			t.Errorf("RamadanRange(%d) start = %v, want 1 Ramadan", year, first)
		}

		last, err := FromTime(end.Add(-12 * time.Hour))
		if err != nil {
			t.Fatalf("FromTime(last): %v", err)
		}
		if last.Month != RamadanMonth {
			t.Errorf("RamadanRange(%d) last day = %v, want Ramadan", year, last)
		}

		after, err := FromTime(end.Add(12 * time.Hour))
		if err != nil {
			t.Fatalf("FromTime(end): %v", err)
		}
		if after.Month != RamadanMonth+1 {
			t.Errorf("RamadanRange(%d) end = %v, want 1 Shawwal", year, after)
		}
	}
}

func TestCurrentYear(t *testing.T) {
	y, err := CurrentYear(time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("CurrentYear: %v", err)
	}
	if y != 1447 {
		t.Errorf("CurrentYear = %d, want 1447", y)
	}
}
