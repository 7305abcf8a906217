// Package hijri converts Gregorian dates to the Islamic calendar using the
// Umm al-Qura tables, the convention used by most mosque timetables.
package hijri

import (
	"fmt"
	"time"

	gohijri "github.com/hablullah/go-hijri"
)

// RamadanMonth is the ninth month of the Hijri year.
const RamadanMonth = 9

// Date is a calendar date in the Umm al-Qura reckoning.
type Date struct {
	Day   int
	Month int
	Year  int
}

var monthNames = map[int]string{
	1:  "Muharram",
	2:  "Safar",
	3:  "Rabi al-Awwal",
	4:  "Rabi al-Thani",
	5:  "Jumada al-Awwal",
	6:  "Jumada al-Thani",
	7:  "Rajab",
	8:  "Shaban",
	9:  "Ramadan",
	10: "Shawwal",
	11: "Dhu al-Qadah",
	12: "Dhu al-Hijjah",
}

var monthNamesTurkish = map[int]string{
	1:  "Muharrem",
	2:  "Safer",
	3:  "Rebiülevvel",
	4:  "Rebiülahir",
	5:  "Cemaziyelevvel",
	6:  "Cemaziyelahir",
	7:  "Recep",
	8:  "Şaban",
	9:  "Ramazan",
	10: "Şevval",
	11: "Zilkade",
	12: "Zilhicce",
}

// FromTime converts a Gregorian instant to its Hijri date. The library
// works on the UTC calendar day of the instant.
func FromTime(t time.Time) (Date, error) {
	u, err := gohijri.CreateUmmAlQuraDate(t)
	if err != nil {
		return Date{}, fmt.Errorf("hijri conversion: %w", err)
	}
	return Date{
		Day:   int(u.Day),
		Month: int(u.Month),
		Year:  int(u.Year),
	}, nil
}

// ToGregorian returns the Gregorian day (midnight UTC) the date begins on.
func (d Date) ToGregorian() (time.Time, error) {
	u := gohijri.UmmAlQuraDate{
		Day:   int64(d.Day),
		Month: int64(d.Month),
		Year:  int64(d.Year),
	}
	return u.ToGregorian(), nil
}

// MonthName returns the English month name, or the raw number when out
// of range.
func (d Date) MonthName() string {
	if name, ok := monthNames[d.Month]; ok {
		return name
	}
	return fmt.Sprintf("Month %d", d.Month)
}

// MonthNameTurkish returns the Turkish month name.
func (d Date) MonthNameTurkish() string {
	if name, ok := monthNamesTurkish[d.Month]; ok {
		return name
	}
	return fmt.Sprintf("%d. ay", d.Month)
}

// IsRamadan reports whether the date falls in Ramadan.
func (d Date) IsRamadan() bool {
	return d.Month == RamadanMonth
}

// String renders the date as "11 Ramadan 1447 AH".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d AH", d.Day, d.MonthName(), d.Year)
}

// RamadanRange resolves the Gregorian span of Ramadan for a Hijri year.
// The second time is the first day of Shawwal, i.e. the range is
// [start, end). Ramadan may run 29 or 30 days; converting day 30 of a
// 29-day Ramadan rolls into Shawwal, which the round-trip check catches.
func RamadanRange(hijriYear int) (start, end time.Time, err error) {
	first := Date{Day: 1, Month: RamadanMonth, Year: hijriYear}
	start, err = first.ToGregorian()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	last := Date{Day: 30, Month: RamadanMonth, Year: hijriYear}
	lastGreg, err := last.ToGregorian()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	roundTrip, err := FromTime(lastGreg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if roundTrip.Month != RamadanMonth {
		// 29-day Ramadan: day 30 landed in Shawwal.
		lastGreg = lastGreg.AddDate(0, 0, -1)
	}
	return start, lastGreg.AddDate(0, 0, 1), nil
}

// CurrentYear returns the Hijri year the instant falls in.
func CurrentYear(t time.Time) (int, error) {
	d, err := FromTime(t)
	if err != nil {
		return 0, err
	}
	return d.Year, nil
}
