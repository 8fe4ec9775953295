package ui

import (
	"fmt"
	"os"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

var colorEnabled = true

func init() {
	// Disable colors if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
	}
}

// SetColor enables or disables color output.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether color output is on.
func ColorEnabled() bool {
	return colorEnabled
}

func colorize(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + Reset
}

func Boldf(format string, a ...any) string {
	return colorize(Bold, fmt.Sprintf(format, a...))
}

func Redf(format string, a ...any) string {
	return colorize(Red, fmt.Sprintf(format, a...))
}

func Greenf(format string, a ...any) string {
	return colorize(Green, fmt.Sprintf(format, a...))
}

func Yellowf(format string, a ...any) string {
	return colorize(Yellow, fmt.Sprintf(format, a...))
}

func Cyanf(format string, a ...any) string {
	return colorize(Cyan, fmt.Sprintf(format, a...))
}

func Dimf(format string, a ...any) string {
	return colorize(Dim, fmt.Sprintf(format, a...))
}

// PercentColor returns a color-coded percentage: green early in the year,
// yellow past the halfway mark, red in the final stretch.
func PercentColor(pct float64) string {
	s := fmt.Sprintf("%.2f%%", pct)
	switch {
	case pct >= 90:
		return colorize(Red, s)
	case pct >= 50:
		return colorize(Yellow, s)
	default:
		return colorize(Green, s)
	}
}

// SourceColor returns a color-coded resolver source name.
func SourceColor(source string) string {
	switch source {
	case "default":
		return colorize(Red, source)
	case "geoip", "zone":
		return colorize(Yellow, source)
	default:
		return colorize(Green, source)
	}
}
