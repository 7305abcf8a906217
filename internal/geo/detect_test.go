package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vakitapp/vakit/internal/config"
)

func newTestDetector(t *testing.T, handler http.HandlerFunc) *Detector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	d := NewDetector()
	d.BaseURL = srv.URL
	return d
}

func TestDetect_Success(t *testing.T) {
	d := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{
			Status:   "success",
			Lat:      41.0082,
			Lon:      28.9784,
			City:     "Istanbul",
			Country:  "Turkey",
			Timezone: "Europe/Istanbul",
		})
	})

	loc, err := d.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if loc.Mode != config.LocationGPS {
		t.Errorf("Mode = %s, want gps", loc.Mode)
	}
	if loc.Latitude != 41.0082 || loc.Longitude != 28.9784 {
		t.Errorf("coordinates = %v, %v", loc.Latitude, loc.Longitude)
	}
	if loc.City != "Istanbul" || loc.Timezone != "Europe/Istanbul" {
		t.Errorf("city/timezone = %q, %q", loc.City, loc.Timezone)
	}
}

func TestDetect_APIFailureStatus(t *testing.T) {
	d := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "fail", Message: "private range"})
	})

	_, err := d.Detect(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "private range") {
		t.Errorf("error = %v, want API message included", err)
	}
}

func TestDetect_HTTPError(t *testing.T) {
	d := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := d.Detect(context.Background()); err == nil {
		t.Fatal("expected error for 503")
	}
}

func TestDetect_InvalidCoordinatesRejected(t *testing.T) {
	d := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "success", Lat: 200, Lon: 0})
	})

	if _, err := d.Detect(context.Background()); err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
}

func TestDetect_MalformedJSON(t *testing.T) {
	d := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	if _, err := d.Detect(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
