// Package geo resolves the user's location from their public IP. One free
// endpoint, no API key; manual coordinates in the config are always an
// alternative.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vakitapp/vakit/internal/config"
)

const defaultBaseURL = "http://ip-api.com/json/"

// ipAPIResponse maps the ip-api.com payload.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// Detector queries the geolocation service.
type Detector struct {
	httpClient *http.Client
	// BaseURL is overridable for tests.
	BaseURL string
}

// NewDetector returns a Detector with a short timeout; IP geolocation is a
// convenience, not something worth stalling startup for.
func NewDetector() *Detector {
	return &Detector{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

// Detect resolves the current public IP into a gps-mode location selection.
// The result is validated before being returned.
func (d *Detector) Detect(ctx context.Context) (config.LocationSelection, error) {
	url := d.BaseURL + "?fields=status,message,lat,lon,city,country,timezone"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return config.LocationSelection{}, fmt.Errorf("geolocation request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return config.LocationSelection{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return config.LocationSelection{}, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return config.LocationSelection{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if result.Status != "success" {
		return config.LocationSelection{}, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	loc := config.LocationSelection{
		Mode:      config.LocationGPS,
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}
	if err := loc.Validate(); err != nil {
		return config.LocationSelection{}, fmt.Errorf("geolocation returned invalid coordinates: %w", err)
	}
	return loc, nil
}
