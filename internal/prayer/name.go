package prayer

// Name identifies one of the six daily prayer instants.
type Name string

const (
	Fajr    Name = "fajr"
	Sunrise Name = "sunrise"
	Dhuhr   Name = "dhuhr"
	Asr     Name = "asr"
	Maghrib Name = "maghrib"
	Isha    Name = "isha"
)

// All lists every tracked instant in canonical chronological order.
var All = []Name{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// Obligatory lists the five daily obligatory prayers.
// Sunrise marks the end of Fajr but is never itself a prayer.
var Obligatory = []Name{Fajr, Dhuhr, Asr, Maghrib, Isha}

// englishNames maps raw names to English display names.
var englishNames = map[Name]string{
	Fajr:    "Fajr",
	Sunrise: "Sunrise",
	Dhuhr:   "Dhuhr",
	Asr:     "Asr",
	Maghrib: "Maghrib",
	Isha:    "Isha",
}

// turkishNames maps raw names to Turkish display names.
var turkishNames = map[Name]string{
	Fajr:    "İmsak",
	Sunrise: "Güneş",
	Dhuhr:   "Öğle",
	Asr:     "İkindi",
	Maghrib: "Akşam",
	Isha:    "Yatsı",
}

// ShortNames maps raw names to single-character abbreviations for
// compact status-bar output.
var ShortNames = map[Name]string{
	Fajr:    "F",
	Sunrise: "S",
	Dhuhr:   "D",
	Asr:     "A",
	Maghrib: "M",
	Isha:    "I",
}

// Display returns the English display name.
func (n Name) Display() string {
	if s, ok := englishNames[n]; ok {
		return s
	}
	return string(n)
}

// DisplayTurkish returns the Turkish display name.
func (n Name) DisplayTurkish() string {
	if s, ok := turkishNames[n]; ok {
		return s
	}
	return string(n)
}

// Valid reports whether n is one of the six known instants.
func (n Name) Valid() bool {
	_, ok := englishNames[n]
	return ok
}

// ParseName converts a raw string into a Name.
func ParseName(s string) (Name, bool) {
	n := Name(s)
	return n, n.Valid()
}
