package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vakitapp/vakit/internal/astro"
)

const sampleTimingsBody = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "05:42 (+03)",
			"Sunrise": "07:10 (+03)",
			"Dhuhr": "12:30 (+03)",
			"Asr": "15:32 (+03)",
			"Maghrib": "17:55 (+03)",
			"Isha": "19:22 (+03)",
			"Imsak": "05:32 (+03)"
		},
		"date": {
			"hijri": {
				"day": "11",
				"month": {"number": 9, "en": "Ramadan", "ar": "رمضان"},
				"year": "1447",
				"designation": {"abbreviated": "AH"}
			}
		}
	}
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.BaseURL = srv.URL
	return c, srv
}

// ---------------------------------------------------------------------------
// Timings
// ---------------------------------------------------------------------------

func TestTimings_Success(t *testing.T) {
	var gotPath, gotQuery string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, sampleTimingsBody)
	})
	defer srv.Close()

	date := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	resp, err := c.Timings(context.Background(), date, 41.0082, 28.9784, astro.MethodTurkey, 1, "Europe/Istanbul")
	if err != nil {
		t.Fatalf("Timings: %v", err)
	}

	if gotPath != "/timings/28-02-2026" {
		t.Errorf("request path = %q, want /timings/28-02-2026", gotPath)
	}
	for _, want := range []string{"method=13", "school=1", "timezonestring=Europe%2FIstanbul"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}

	if resp.Data.Timings.Fajr != "05:42 (+03)" {
		t.Errorf("fajr = %q", resp.Data.Timings.Fajr)
	}
	if resp.Data.Date.Hijri.Month.Number != 9 {
		t.Errorf("hijri month = %d, want 9", resp.Data.Date.Hijri.Month.Number)
	}
}

func TestTimings_StatusTaxonomy(t *testing.T) {
	tests := []struct {
		status     int
		wantStatus int // expected StatusError code; 0 means ErrInvalidLocation
	}{
		{http.StatusBadRequest, 0},
		{http.StatusForbidden, http.StatusForbidden},
		{http.StatusNotFound, http.StatusNotFound},
		{http.StatusInternalServerError, http.StatusInternalServerError},
		{http.StatusBadGateway, http.StatusBadGateway},
		{http.StatusTeapot, http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			defer srv.Close()

			_, err := c.Timings(context.Background(), time.Now(), 0, 0, astro.MethodTurkey, 0, "")
			if err == nil {
				t.Fatal("expected error")
			}

			if tt.wantStatus == 0 {
				if !errors.Is(err, ErrInvalidLocation) {
					t.Errorf("error = %v, want ErrInvalidLocation", err)
				}
				return
			}
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error type = %T, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", statusErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestTimings_MalformedBody(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	})
	defer srv.Close()

	_, err := c.Timings(context.Background(), time.Now(), 0, 0, astro.MethodTurkey, 0, "")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error = %v (%T), want *DecodeError", err, err)
	}
}

func TestTimings_APILevelError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 500, "status": "Internal Server Error", "data": {}}`)
	})
	defer srv.Close()

	_, err := c.Timings(context.Background(), time.Now(), 0, 0, astro.MethodTurkey, 0, "")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v (%T), want *StatusError", err, err)
	}
	if statusErr.StatusCode != 500 {
		t.Errorf("status = %d, want 500", statusErr.StatusCode)
	}
}

// ---------------------------------------------------------------------------
// HijriDate
// ---------------------------------------------------------------------------

func TestHijriDate(t *testing.T) {
	var gotPath string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"code": 200, "data": {"hijri": {
			"day": "1",
			"month": {"number": 9, "en": "Ramadan", "ar": "رمضان"},
			"year": "1447",
			"designation": {"abbreviated": "AH"}
		}}}`)
	})
	defer srv.Close()

	date := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)
	h, err := c.HijriDate(context.Background(), date)
	if err != nil {
		t.Fatalf("HijriDate: %v", err)
	}
	if gotPath != "/gToH/18-02-2026" {
		t.Errorf("request path = %q, want /gToH/18-02-2026", gotPath)
	}
	if h.Month.En != "Ramadan" || h.Year != "1447" {
		t.Errorf("hijri = %+v", h)
	}
}

// ---------------------------------------------------------------------------
// Method code mapping
// ---------------------------------------------------------------------------

func TestMethodCode(t *testing.T) {
	tests := []struct {
		method astro.Method
		want   int
	}{
		{astro.MethodMuslimWorldLeague, 3},
		{astro.MethodNorthAmerica, 2},
		{astro.MethodEgyptian, 5},
		{astro.MethodUmmAlQura, 4},
		{astro.MethodKarachi, 1},
		{astro.MethodTehran, 7},
		{astro.MethodTurkey, 13},
		{astro.MethodDubai, 8},
		{astro.MethodKuwait, 9},
		{astro.MethodQatar, 10},
		{astro.MethodSingapore, 11},
		// Not supported remotely: degrades to MWL rather than failing.
		{astro.MethodMoonsightingCommittee, 3},
	}

	for _, tt := range tests {
		if got := MethodCode(tt.method); got != tt.want {
			t.Errorf("MethodCode(%s) = %d, want %d", tt.method, got, tt.want)
		}
	}
}
