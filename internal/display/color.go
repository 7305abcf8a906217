// Package display renders prayer and Ramadan tables for the terminal with
// raw ANSI escape codes.
//
// It respects the NO_COLOR environment variable (https://no-color.org/) and
// detects whether stdout is a terminal, so piped or redirected output stays
// plain.
package display

import (
	"fmt"
	"os"
)

// style is an ANSI SGR sequence.
type style string

const (
	reset        = "\033[0m"
	styleBold    style = "\033[1m"
	styleDim     style = "\033[2m"
	styleGreen   style = "\033[32m"
	styleYellow  style = "\033[33m"
	styleMagenta style = "\033[35m"
	styleCyan    style = "\033[36m"
	styleGray    style = "\033[90m" // bright black
	styleAccent  style = "\033[1m\033[36m"
)

// enabled reports whether color output is active. Set once at init time.
var enabled = shouldEnable()

// shouldEnable determines whether to use color output.
func shouldEnable() bool {
	// Respect NO_COLOR (https://no-color.org/).
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// Respect FORCE_COLOR for testing.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return isTerminal(os.Stdout)
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetEnabled overrides the auto-detected color state.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether color output is currently active.
func Enabled() bool {
	return enabled
}

func (s style) paint(text string) string {
	if !enabled {
		return text
	}
	return string(s) + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return styleBold.paint(text) }

// Dim returns text rendered in dim/faint. Used for already-passed prayers.
func Dim(text string) string { return styleDim.paint(text) }

// Green returns text rendered in green.
func Green(text string) string { return styleGreen.paint(text) }

// Yellow returns text rendered in yellow.
func Yellow(text string) string { return styleYellow.paint(text) }

// Magenta returns text rendered in magenta. Used for Ramadan rows.
func Magenta(text string) string { return styleMagenta.paint(text) }

// Cyan returns text rendered in cyan.
func Cyan(text string) string { return styleCyan.paint(text) }

// Gray returns text rendered in gray (bright black).
func Gray(text string) string { return styleGray.paint(text) }

// Accent returns text in the bold-cyan accent used for the next prayer.
func Accent(text string) string { return styleAccent.paint(text) }

// Boldf formats and bolds a string.
func Boldf(format string, a ...interface{}) string {
	return Bold(fmt.Sprintf(format, a...))
}
