package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/sj14/astral/pkg/astral"
)

// Coordinates locate the observer.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// RawTimes are the six canonical instants produced by an engine, in the
// timezone of the requested date. Imsak derivation is the provider's job,
// not the engine's.
type RawTimes struct {
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

// Engine computes prayer instants for a coordinate and calendar date.
// Implementations must be deterministic: same inputs, same outputs, no I/O.
type Engine interface {
	Compute(coords Coordinates, date time.Time, params Params) (RawTimes, error)
}

// CalculationError reports that no times exist for the given inputs, e.g.
// extreme-latitude dates where the sun never reaches the required depression
// and no high-latitude rule was configured. It carries the offending date
// components for diagnostics.
type CalculationError struct {
	Year   int
	Month  time.Month
	Day    int
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("prayer time calculation failed for %04d-%02d-%02d: %s",
		e.Year, e.Month, e.Day, e.Reason)
}

// SolarEngine is the default Engine, built on the astral solar library.
type SolarEngine struct{}

// NewSolarEngine returns the default offline engine.
func NewSolarEngine() *SolarEngine {
	return &SolarEngine{}
}

// Compute resolves the six instants for the date in date's timezone.
func (e *SolarEngine) Compute(coords Coordinates, date time.Time, params Params) (RawTimes, error) {
	obs := astral.Observer{Latitude: coords.Latitude, Longitude: coords.Longitude}
	loc := date.Location()

	calcErr := func(reason string) (RawTimes, error) {
		return RawTimes{}, &CalculationError{
			Year: date.Year(), Month: date.Month(), Day: date.Day(), Reason: reason,
		}
	}

	sunrise, err := astral.Sunrise(obs, date)
	if err != nil {
		// Polar day or polar night: no sunrise event at all.
		return calcErr(fmt.Sprintf("no sunrise: %v", err))
	}
	sunset, err := astral.Sunset(obs, date)
	if err != nil {
		return calcErr(fmt.Sprintf("no sunset: %v", err))
	}
	sunrise = sunrise.In(loc)
	sunset = sunset.In(loc)

	dhuhr := astral.Noon(obs, date).In(loc)

	// Night duration for high-latitude approximations: sunset to the
	// following sunrise.
	night := func() (time.Duration, error) {
		next, err := astral.Sunrise(obs, date.AddDate(0, 0, 1))
		if err != nil {
			return 0, err
		}
		return next.In(loc).Sub(sunset), nil
	}

	fajr, err := e.twilight(obs, date, loc, params.FajrAngle, astral.SunDirectionRising)
	if err != nil {
		if params.HighLatitudeRule == "" {
			return calcErr(fmt.Sprintf("no dawn at %.1f° depression: %v", params.FajrAngle, err))
		}
		n, nerr := night()
		if nerr != nil {
			return calcErr(fmt.Sprintf("no dawn and no usable night: %v", nerr))
		}
		portion := params.HighLatitudeRule.nightPortion(params.FajrAngle)
		fajr = sunrise.Add(-time.Duration(float64(n) * portion))
	}

	maghrib := sunset
	if params.MaghribAngle > 0 {
		if t, err := e.twilight(obs, date, loc, params.MaghribAngle, astral.SunDirectionSetting); err == nil {
			maghrib = t
		}
	}

	var isha time.Time
	if params.IshaIntervalMinutes > 0 {
		isha = maghrib.Add(time.Duration(params.IshaIntervalMinutes) * time.Minute)
	} else {
		isha, err = e.twilight(obs, date, loc, params.IshaAngle, astral.SunDirectionSetting)
		if err != nil {
			if params.HighLatitudeRule == "" {
				return calcErr(fmt.Sprintf("no dusk at %.1f° depression: %v", params.IshaAngle, err))
			}
			n, nerr := night()
			if nerr != nil {
				return calcErr(fmt.Sprintf("no dusk and no usable night: %v", nerr))
			}
			portion := params.HighLatitudeRule.nightPortion(params.IshaAngle)
			isha = sunset.Add(time.Duration(float64(n) * portion))
		}
	}

	asrElev := asrElevation(coords.Latitude, date, params.Madhab.ShadowFactor())
	asr, err := astral.TimeAtElevation(obs, asrElev, date, astral.SunDirectionSetting)
	if err != nil {
		return calcErr(fmt.Sprintf("no asr at %.1f° elevation: %v", asrElev, err))
	}
	asr = asr.In(loc)

	adj := params.Adjustments
	return RawTimes{
		Fajr:    fajr.Add(time.Duration(adj.Fajr) * time.Minute),
		Sunrise: sunrise.Add(time.Duration(adj.Sunrise) * time.Minute),
		Dhuhr:   dhuhr.Add(time.Duration(adj.Dhuhr) * time.Minute),
		Asr:     asr.Add(time.Duration(adj.Asr) * time.Minute),
		Maghrib: maghrib.Add(time.Duration(adj.Maghrib) * time.Minute),
		Isha:    isha.Add(time.Duration(adj.Isha) * time.Minute),
	}, nil
}

// twilight finds the instant the sun crosses the given depression angle.
func (e *SolarEngine) twilight(obs astral.Observer, date time.Time, loc *time.Location, depression float64, dir astral.SunDirection) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	if dir == astral.SunDirectionRising {
		t, err = astral.Dawn(obs, date, depression)
	} else {
		t, err = astral.Dusk(obs, date, depression)
	}
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// asrElevation returns the solar elevation at which an object's shadow is
// `factor` times its height (plus the noon shadow), the classical Asr
// definition. Uses the standard low-precision declination approximation,
// which is well within the minute-level contract.
func asrElevation(latitude float64, date time.Time, factor float64) float64 {
	decl := solarDeclination(date)
	delta := math.Abs(latitude-decl) * math.Pi / 180
	elev := math.Atan(1.0 / (factor + math.Tan(delta)))
	return elev * 180 / math.Pi
}

// solarDeclination approximates the sun's declination in degrees for the
// given date.
func solarDeclination(date time.Time) float64 {
	n := float64(date.YearDay())
	return -23.44 * math.Cos((2*math.Pi/365.0)*(n+10))
}
