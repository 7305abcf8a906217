// Package astro computes the six daily prayer instants from solar geometry.
// It maps user-facing calculation settings (method, juristic school,
// high-latitude rule) onto twilight angles and shadow factors, and resolves
// them into concrete instants using the astral solar library.
package astro

import (
	"fmt"
	"strings"
)

// Method identifies a regional/institutional calculation convention.
type Method string

const (
	MethodTurkey                Method = "turkey"
	MethodMuslimWorldLeague     Method = "muslimWorldLeague"
	MethodEgyptian              Method = "egyptian"
	MethodKarachi               Method = "karachi"
	MethodUmmAlQura             Method = "ummAlQura"
	MethodDubai                 Method = "dubai"
	MethodNorthAmerica          Method = "northAmerica"
	MethodKuwait                Method = "kuwait"
	MethodQatar                 Method = "qatar"
	MethodSingapore             Method = "singapore"
	MethodTehran                Method = "tehran"
	MethodMoonsightingCommittee Method = "moonsightingCommittee"
)

// Methods lists every supported calculation method.
var Methods = []Method{
	MethodTurkey,
	MethodMuslimWorldLeague,
	MethodEgyptian,
	MethodKarachi,
	MethodUmmAlQura,
	MethodDubai,
	MethodNorthAmerica,
	MethodKuwait,
	MethodQatar,
	MethodSingapore,
	MethodTehran,
	MethodMoonsightingCommittee,
}

// methodDisplayNames maps methods to human-readable names.
var methodDisplayNames = map[Method]string{
	MethodTurkey:                "Diyanet (Türkiye)",
	MethodMuslimWorldLeague:     "Muslim World League",
	MethodEgyptian:              "Egyptian General Authority",
	MethodKarachi:               "University of Karachi",
	MethodUmmAlQura:             "Umm al-Qura (Makkah)",
	MethodDubai:                 "Dubai",
	MethodNorthAmerica:          "ISNA (North America)",
	MethodKuwait:                "Kuwait",
	MethodQatar:                 "Qatar",
	MethodSingapore:             "Singapore",
	MethodTehran:                "Tehran",
	MethodMoonsightingCommittee: "Moonsighting Committee",
}

// Display returns the human-readable method name.
func (m Method) Display() string {
	if s, ok := methodDisplayNames[m]; ok {
		return s
	}
	return string(m)
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	_, ok := methodDisplayNames[m]
	return ok
}

// ParseMethod converts a raw string into a Method, case-insensitively.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown calculation method %q", s)
}

// Madhab is the juristic school used for the Asr shadow length.
type Madhab string

const (
	MadhabShafi  Madhab = "shafi"  // shadow factor 1
	MadhabHanafi Madhab = "hanafi" // shadow factor 2
)

// ShadowFactor returns the Asr shadow-length multiplier for the school.
func (m Madhab) ShadowFactor() float64 {
	if m == MadhabHanafi {
		return 2
	}
	return 1
}

// ParseMadhab converts a raw string into a Madhab.
func ParseMadhab(s string) (Madhab, error) {
	switch strings.ToLower(s) {
	case string(MadhabShafi):
		return MadhabShafi, nil
	case string(MadhabHanafi):
		return MadhabHanafi, nil
	}
	return "", fmt.Errorf("unknown madhab %q (want shafi or hanafi)", s)
}

// HighLatitudeRule selects the twilight approximation used when the sun
// never reaches the method's depression angle (summer at high latitudes).
type HighLatitudeRule string

const (
	MiddleOfTheNight  HighLatitudeRule = "middleOfTheNight"
	SeventhOfTheNight HighLatitudeRule = "seventhOfTheNight"
	TwilightAngle     HighLatitudeRule = "twilightAngle"
)

// ParseHighLatitudeRule converts a raw string into a HighLatitudeRule.
func ParseHighLatitudeRule(s string) (HighLatitudeRule, error) {
	for _, r := range []HighLatitudeRule{MiddleOfTheNight, SeventhOfTheNight, TwilightAngle} {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown high latitude rule %q", s)
}

// nightPortion returns the fraction of the night the rule allocates to
// twilight for the given depression angle.
func (r HighLatitudeRule) nightPortion(angle float64) float64 {
	switch r {
	case SeventhOfTheNight:
		return 1.0 / 7.0
	case TwilightAngle:
		return angle / 60.0
	default: // MiddleOfTheNight
		return 1.0 / 2.0
	}
}
