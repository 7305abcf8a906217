package astro

// Adjustments are per-instant minute corrections applied after the solar
// calculation. Some authorities (notably Diyanet) publish times with fixed
// offsets from the astronomical events.
type Adjustments struct {
	Fajr    int
	Sunrise int
	Dhuhr   int
	Asr     int
	Maghrib int
	Isha    int
}

// Params are the resolved inputs to the solar engine.
type Params struct {
	FajrAngle float64
	IshaAngle float64

	// IshaIntervalMinutes, when positive, replaces the Isha angle with a
	// fixed offset after Maghrib (Umm al-Qura and Qatar convention).
	IshaIntervalMinutes int

	// MaghribAngle, when positive, places Maghrib at a solar depression
	// instead of at sunset (Tehran convention).
	MaghribAngle float64

	Madhab           Madhab
	HighLatitudeRule HighLatitudeRule // empty: fail instead of approximating
	Adjustments      Adjustments
}

// methodParams is the fixed angle table, following the published
// conventions of each authority.
var methodParams = map[Method]Params{
	MethodTurkey: {
		FajrAngle: 18, IshaAngle: 17,
		Adjustments: Adjustments{Sunrise: -7, Dhuhr: 5, Asr: 4, Maghrib: 7},
	},
	MethodMuslimWorldLeague: {FajrAngle: 18, IshaAngle: 17},
	MethodEgyptian:          {FajrAngle: 19.5, IshaAngle: 17.5},
	MethodKarachi:           {FajrAngle: 18, IshaAngle: 18},
	MethodUmmAlQura:         {FajrAngle: 18.5, IshaIntervalMinutes: 90},
	MethodDubai:             {FajrAngle: 18.2, IshaAngle: 18.2},
	MethodNorthAmerica:      {FajrAngle: 15, IshaAngle: 15},
	MethodKuwait:            {FajrAngle: 18, IshaAngle: 17.5},
	MethodQatar:             {FajrAngle: 18, IshaIntervalMinutes: 90},
	MethodSingapore:         {FajrAngle: 20, IshaAngle: 18},
	MethodTehran:            {FajrAngle: 17.7, IshaAngle: 14, MaghribAngle: 4.5},
	// No seasonal adjustment model; fixed 18/18 is the closest stable fit.
	MethodMoonsightingCommittee: {FajrAngle: 18, IshaAngle: 18},
}

// MethodParams returns the angle defaults for a calculation method.
// Unknown methods fall back to Muslim World League angles.
func MethodParams(m Method) Params {
	if p, ok := methodParams[m]; ok {
		return p
	}
	return methodParams[MethodMuslimWorldLeague]
}

// ParamsFor resolves user-facing calculation settings into engine parameters:
// method defaults first, then explicit madhab and high-latitude overrides.
func ParamsFor(m Method, madhab Madhab, rule *HighLatitudeRule) Params {
	p := MethodParams(m)
	p.Madhab = madhab
	if rule != nil {
		p.HighLatitudeRule = *rule
	}
	return p
}
