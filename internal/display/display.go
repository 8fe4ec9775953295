// Package display handles plain terminal rendering of year progress with
// live updates.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"4d63.com/tz"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/logging"
	"github.com/agent-platform/tools/yearprogress/internal/progress"
	"github.com/agent-platform/tools/yearprogress/internal/session"
	"github.com/agent-platform/tools/yearprogress/internal/ui"
)

const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	barWidth    = 40
	ruleWidth   = 52
)

// Render writes one frame for loc and p to w. now is used for the relative
// time to the end of the year.
func Render(w io.Writer, loc catalog.Location, p progress.Progress, now time.Time) {
	fmt.Fprintf(w, "%s %s\n", ui.Boldf("⏳ %d Progress", p.Year), ui.Dimf("(%s)", loc.Timezone))
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "  %s %s\n", catalog.Flag(loc.CountryCode), ui.Cyanf("%s", loc.DisplayName))
	fmt.Fprintf(w, "  %s\n\n", ui.Dimf("%s", p.Timestamp))

	fmt.Fprintf(w, "  %s of %d completed\n", ui.PercentColor(p.Percentage), p.Year)
	fmt.Fprintf(w, "  %s\n\n", progress.Bar(p, barWidth))

	fmt.Fprintf(w, "  %-16s %s\n", "Days elapsed", ui.Boldf("%d", p.DaysElapsed))
	fmt.Fprintf(w, "  %-16s %s\n", "Days remaining", ui.Boldf("%d", p.DaysRemaining))
	if p.DayOfYear > 0 {
		fmt.Fprintf(w, "  %-16s %s\n", "Today", fmt.Sprintf("the %s day of %d", humanize.Ordinal(p.DayOfYear), p.TotalDays))
	}
	fmt.Fprintf(w, "  %-16s %s\n", "Year ends", yearEnds(loc.Timezone, p.Year, now))

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
}

// yearEnds describes the next local midnight of January 1 relative to now.
func yearEnds(zone string, year int, now time.Time) string {
	loc, err := tz.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	return humanize.RelTime(end, now, "ago", "from now")
}

// Options configures Run.
type Options struct {
	Year     int
	Interval time.Duration
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
	Log *logrus.Entry
}

// Run renders the session's location to w immediately and on every tick
// until ctx is cancelled. Ticks without a location are skipped.
func Run(ctx context.Context, w io.Writer, sess *session.Session, opts Options) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	frame := func() {
		loc, ok := sess.Current()
		if !ok {
			return
		}
		now := opts.Now()
		p, err := progress.Compute(loc.Timezone, opts.Year, now)
		if err != nil {
			opts.Log.WithError(err).Warn("compute progress")
			return
		}
		fmt.Fprint(w, clearScreen+cursorHome)
		Render(w, loc, p, now)
		fmt.Fprintf(w, "%s\n", ui.Dimf("Press Ctrl+C to exit"))
	}

	frame()

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame()
		}
	}
}
