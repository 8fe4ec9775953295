// Package progress computes how much of a calendar year has elapsed as
// observed on the local wall clock of a timezone.
package progress

import (
	"fmt"
	"math"
	"strings"
	"time"

	"4d63.com/tz"
)

// TimestampLayout renders the current local time for display.
const TimestampLayout = "Monday, January 2, 2006 at 03:04:05 PM"

const day = 24 * time.Hour

// Progress is a snapshot of the target year's completion.
type Progress struct {
	Year          int     `json:"year"`
	Percentage    float64 `json:"percentage"`
	Timestamp     string  `json:"current_date"`
	DaysElapsed   int     `json:"days_elapsed"`
	DaysRemaining int     `json:"days_remaining"`
	TotalDays     int     `json:"total_days"`
	DayOfYear     int     `json:"day_of_year"`
}

// YearStart is local midnight on January 1 of year, expressed without an
// offset so it can be compared with values from localNow.
func YearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// YearEnd is local 23:59:59 on December 31 of year, offset-free.
func YearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
}

// localNow reads the wall clock fields of now in loc and reinterprets them
// as an offset-free instant. Differences between such values equal the
// elapsed local wall-clock duration, whatever DST transitions lie between.
func localNow(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// At computes the progress of year at now in loc.
func At(loc *time.Location, year int, now time.Time) Progress {
	local := localNow(now, loc)
	start, end := YearStart(year), YearEnd(year)

	elapsed := local.Sub(start)
	total := end.Sub(start)

	pct := 100 * float64(elapsed) / float64(total)
	pct = math.Round(clamp(pct, 0, 100)*100) / 100

	daysElapsed := int(math.Floor(float64(elapsed) / float64(day)))
	daysRemaining := int(math.Ceil(float64(end.Sub(local)) / float64(day)))

	totalDays := int(YearStart(year+1).Sub(start) / day)
	dayOfYear := 0
	if local.Year() == year {
		dayOfYear = local.YearDay()
	}

	// Outside the year the counts saturate at the year's length.
	return Progress{
		Year:          year,
		Percentage:    pct,
		Timestamp:     now.In(loc).Format(TimestampLayout),
		DaysElapsed:   min(max(0, daysElapsed), totalDays),
		DaysRemaining: min(max(0, daysRemaining), totalDays),
		TotalDays:     totalDays,
		DayOfYear:     dayOfYear,
	}
}

// Compute loads zone and computes the progress of year at now. An unknown
// zone is an error; callers are expected to pass identifiers taken from the
// catalog.
func Compute(zone string, year int, now time.Time) (Progress, error) {
	loc, err := tz.LoadLocation(zone)
	if err != nil {
		return Progress{}, fmt.Errorf("load timezone %s: %w", zone, err)
	}
	return At(loc, year, now), nil
}

// Bar draws p as a bar of width cells.
func Bar(p Progress, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(p.Percentage / 100 * float64(width)))
	filled = int(clamp(float64(filled), 0, float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
