package config

import (
	"fmt"
	"time"
)

// LocationMode describes how the location was chosen.
type LocationMode string

const (
	LocationGPS    LocationMode = "gps"
	LocationManual LocationMode = "manual"
)

// LocationSelection is the user's location for prayer time calculation.
type LocationSelection struct {
	Mode      LocationMode `json:"mode"`
	Country   string       `json:"country,omitempty"`
	City      string       `json:"city,omitempty"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Timezone  string       `json:"timezone"` // IANA identifier
}

// Istanbul is the default location used when nothing is configured.
var Istanbul = LocationSelection{
	Mode:      LocationManual,
	Country:   "Turkey",
	City:      "Istanbul",
	Latitude:  41.0082,
	Longitude: 28.9784,
	Timezone:  "Europe/Istanbul",
}

// Validate checks the coordinate bounds.
func (l LocationSelection) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", l.Longitude)
	}
	return nil
}

// TimezoneLocation resolves the IANA timezone identifier, falling back to
// the system default zone when it does not resolve.
func (l LocationSelection) TimezoneLocation() *time.Location {
	if l.Timezone != "" {
		if loc, err := time.LoadLocation(l.Timezone); err == nil {
			return loc
		}
	}
	return time.Local
}

// DisplayName returns the city name, or the coordinates when no city is set.
func (l LocationSelection) DisplayName() string {
	if l.City != "" {
		if l.Country != "" {
			return l.City + ", " + l.Country
		}
		return l.City
	}
	return fmt.Sprintf("%.2f, %.2f", l.Latitude, l.Longitude)
}
