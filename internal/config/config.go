// Package config provides persistent configuration for the vakit CLI.
//
// Settings are stored as JSON at ~/.config/vakit/config.json
// (XDG-compliant). The merge priority is: CLI flags > config file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/prayer"
)

const (
	configDirName  = "vakit"
	configFileName = "config.json"
)

// CalcSettings select the prayer time calculation convention.
type CalcSettings struct {
	Method astro.Method `json:"method"`
	Madhab astro.Madhab `json:"madhab"`
	// HighLatitudeRule, when nil, leaves extreme-latitude dates failing
	// rather than approximated.
	HighLatitudeRule *astro.HighLatitudeRule `json:"high_latitude_rule,omitempty"`
}

// TurkeyDefault is the default calculation convention: Diyanet method with
// the Hanafi school.
var TurkeyDefault = CalcSettings{
	Method: astro.MethodTurkey,
	Madhab: astro.MadhabHanafi,
}

// Settings holds all user-configurable state.
type Settings struct {
	Location   LocationSelection `json:"location"`
	Calc       CalcSettings      `json:"calc"`
	Reminders  ReminderSettings  `json:"reminders"`
	TimeFormat string            `json:"time_format,omitempty"` // "12h" or "24h"
}

// Default returns a fully-populated Settings value: Istanbul, Diyanet
// calculation, all obligatory reminders on.
func Default() Settings {
	return Settings{
		Location:   Istanbul,
		Calc:       TurkeyDefault,
		Reminders:  DefaultReminders(),
		TimeFormat: "24h",
	}
}

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = buildValidKeys()

func buildValidKeys() []string {
	keys := []string{
		"location.mode", "location.city", "location.country",
		"location.latitude", "location.longitude", "location.timezone",
		"calc.method", "calc.madhab", "calc.high_latitude_rule",
		"time_format",
		"reminders.imsak", "reminders.imsak_offset",
		"reminders.iftar", "reminders.iftar_offset",
		"reminders.alarm_mode",
	}
	for _, n := range prayer.Obligatory {
		keys = append(keys, "reminders."+string(n), "reminders."+string(n)+"_offset")
	}
	return keys
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// If the file does not exist, it returns the defaults (not an error).
// If the file exists but is invalid JSON, it returns an error.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s := Default()
			return &s, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if err := s.Location.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &s, nil
}

// Save writes the config to disk, creating the directory if needed.
func (s *Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// Set sets a config key to the given value.
// It validates the key name and parses the value into the correct type.
func (s *Settings) Set(key, value string) error {
	if strings.HasPrefix(key, "reminders.") {
		return s.setReminder(strings.TrimPrefix(key, "reminders."), value)
	}

	switch key {
	case "location.mode":
		switch LocationMode(value) {
		case LocationGPS, LocationManual:
			s.Location.Mode = LocationMode(value)
		default:
			return fmt.Errorf("invalid mode %q: must be gps or manual", value)
		}
	case "location.city":
		s.Location.City = value
	case "location.country":
		s.Location.Country = value
	case "location.latitude":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q: must be a number", value)
		}
		if v < -90 || v > 90 {
			return fmt.Errorf("invalid latitude %q: must be between -90 and 90", value)
		}
		s.Location.Latitude = v
	case "location.longitude":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q: must be a number", value)
		}
		if v < -180 || v > 180 {
			return fmt.Errorf("invalid longitude %q: must be between -180 and 180", value)
		}
		s.Location.Longitude = v
	case "location.timezone":
		s.Location.Timezone = value
	case "calc.method":
		m, err := astro.ParseMethod(value)
		if err != nil {
			return err
		}
		s.Calc.Method = m
	case "calc.madhab":
		m, err := astro.ParseMadhab(value)
		if err != nil {
			return err
		}
		s.Calc.Madhab = m
	case "calc.high_latitude_rule":
		if value == "" || value == "none" {
			s.Calc.HighLatitudeRule = nil
			return nil
		}
		r, err := astro.ParseHighLatitudeRule(value)
		if err != nil {
			return err
		}
		s.Calc.HighLatitudeRule = &r
	case "time_format":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("invalid time_format %q: must be \"12h\" or \"24h\"", value)
		}
		s.TimeFormat = value
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}

	return nil
}

// setReminder handles the reminders.* key space.
func (s *Settings) setReminder(key, value string) error {
	setBool := func(dst *bool) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q: must be true or false", value)
		}
		*dst = v
		return nil
	}
	setMinutes := func(dst *int, positiveOnly bool) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid offset %q: must be an integer number of minutes", value)
		}
		if positiveOnly && v < 0 {
			return fmt.Errorf("invalid offset %q: must be zero or positive (minutes before)", value)
		}
		*dst = v
		return nil
	}

	switch key {
	case "imsak":
		return setBool(&s.Reminders.ImsakEnabled)
	case "imsak_offset":
		return setMinutes(&s.Reminders.ImsakOffsetMinutes, true)
	case "iftar":
		return setBool(&s.Reminders.IftarEnabled)
	case "iftar_offset":
		return setMinutes(&s.Reminders.IftarOffsetMinutes, true)
	case "alarm_mode":
		return setBool(&s.Reminders.AlarmMode)
	}

	// Per-prayer keys: "<prayer>" and "<prayer>_offset".
	name := strings.TrimSuffix(key, "_offset")
	n, ok := prayer.ParseName(name)
	if !ok || n == prayer.Sunrise {
		return fmt.Errorf("unknown config key %q; valid keys: %s",
			"reminders."+key, strings.Join(ValidKeys, ", "))
	}

	if strings.HasSuffix(key, "_offset") {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid offset %q: must be an integer number of minutes", value)
		}
		if s.Reminders.PrayerOffsetMinutes == nil {
			s.Reminders.PrayerOffsetMinutes = map[string]int{}
		}
		s.Reminders.PrayerOffsetMinutes[string(n)] = v
		return nil
	}

	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value %q: must be true or false", value)
	}
	if s.Reminders.PrayerEnabled == nil {
		s.Reminders.PrayerEnabled = map[string]bool{}
	}
	s.Reminders.PrayerEnabled[string(n)] = v
	return nil
}

// Get returns the string value of a config key.
func (s *Settings) Get(key string) (string, error) {
	if strings.HasPrefix(key, "reminders.") {
		return s.getReminder(strings.TrimPrefix(key, "reminders."))
	}

	switch key {
	case "location.mode":
		return string(s.Location.Mode), nil
	case "location.city":
		return s.Location.City, nil
	case "location.country":
		return s.Location.Country, nil
	case "location.latitude":
		return strconv.FormatFloat(s.Location.Latitude, 'f', -1, 64), nil
	case "location.longitude":
		return strconv.FormatFloat(s.Location.Longitude, 'f', -1, 64), nil
	case "location.timezone":
		return s.Location.Timezone, nil
	case "calc.method":
		return string(s.Calc.Method), nil
	case "calc.madhab":
		return string(s.Calc.Madhab), nil
	case "calc.high_latitude_rule":
		if s.Calc.HighLatitudeRule == nil {
			return "", nil
		}
		return string(*s.Calc.HighLatitudeRule), nil
	case "time_format":
		return s.TimeFormat, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// getReminder handles the reminders.* key space.
func (s *Settings) getReminder(key string) (string, error) {
	switch key {
	case "imsak":
		return strconv.FormatBool(s.Reminders.ImsakEnabled), nil
	case "imsak_offset":
		return strconv.Itoa(s.Reminders.ImsakOffsetMinutes), nil
	case "iftar":
		return strconv.FormatBool(s.Reminders.IftarEnabled), nil
	case "iftar_offset":
		return strconv.Itoa(s.Reminders.IftarOffsetMinutes), nil
	case "alarm_mode":
		return strconv.FormatBool(s.Reminders.AlarmMode), nil
	}

	name := strings.TrimSuffix(key, "_offset")
	n, ok := prayer.ParseName(name)
	if !ok || n == prayer.Sunrise {
		return "", fmt.Errorf("unknown config key %q", "reminders."+key)
	}
	if strings.HasSuffix(key, "_offset") {
		return strconv.Itoa(s.Reminders.PrayerOffsetMinutes[string(n)]), nil
	}
	return strconv.FormatBool(s.Reminders.PrayerEnabled[string(n)]), nil
}
