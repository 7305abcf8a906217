package api

// Response is the top-level AlAdhan timings response.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

// Data holds the prayer timings and date info for one day.
type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
}

// Timings contains the prayer and event times as "HH:mm" strings.
// The API may append a timezone suffix like " (EET)" which is stripped
// during parsing.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
	Imsak   string `json:"Imsak"`
}

// DateInfo carries the date representations for the response day.
type DateInfo struct {
	Hijri HijriDate `json:"hijri"`
}

// HijriDate is the Hijri (Islamic) date as reported by the API.
type HijriDate struct {
	Day         string           `json:"day"`
	Month       HijriMonth       `json:"month"`
	Year        string           `json:"year"`
	Designation HijriDesignation `json:"designation"`
}

// HijriMonth identifies the Hijri month.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// HijriDesignation contains the calendar designation labels.
type HijriDesignation struct {
	Abbreviated string `json:"abbreviated"` // "AH"
}

// HijriResponse is the Gregorian-to-Hijri conversion response.
type HijriResponse struct {
	Code int `json:"code"`
	Data struct {
		Hijri HijriDate `json:"hijri"`
	} `json:"data"`
}
