// Package locate resolves the location whose year progress is shown by
// trying an ordered list of strategies and falling back to a fixed default.
package locate

import (
	"context"
	"fmt"

	"4d63.com/tz"
	"github.com/sirupsen/logrus"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/logging"
)

// SourceDefault names the terminal fallback in a Resolution.
const SourceDefault = "default"

// DefaultLocation is used when no strategy succeeds and no configured
// default is available.
var DefaultLocation = catalog.Location{
	DisplayName: "New York, United States",
	Timezone:    "America/New_York",
	CountryCode: "US",
	City:        "New York",
	Country:     "United States",
}

// Strategy is one tier of the resolution chain. Resolve reports false when
// it cannot produce a location; failures are absences, not errors.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context) (catalog.Location, bool)
}

type strategyFunc struct {
	name string
	fn   func(context.Context) (catalog.Location, bool)
}

func (s strategyFunc) Name() string { return s.name }

func (s strategyFunc) Resolve(ctx context.Context) (catalog.Location, bool) {
	return s.fn(ctx)
}

// StrategyFunc adapts fn into a Strategy called name.
func StrategyFunc(name string, fn func(context.Context) (catalog.Location, bool)) Strategy {
	return strategyFunc{name: name, fn: fn}
}

// Resolution is a resolved location and the strategy that produced it.
type Resolution struct {
	Location catalog.Location `json:"location"`
	Source   string           `json:"source"`
}

// Resolver evaluates strategies in order; the first success wins.
type Resolver struct {
	strategies []Strategy
	fallback   catalog.Location
	log        *logrus.Entry
}

// New returns a Resolver that tries strategies in order and returns fallback
// when all of them fail. A nil log discards output.
func New(fallback catalog.Location, log *logrus.Entry, strategies ...Strategy) *Resolver {
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{
		strategies: strategies,
		fallback:   fallback,
		log:        log,
	}
}

// Strategies returns the names of the configured strategies in order.
func (r *Resolver) Strategies() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}

// Resolve runs the chain. It always returns a usable location.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	for _, s := range r.strategies {
		if ctx.Err() != nil {
			r.log.WithError(ctx.Err()).Debug("resolution cancelled")
			break
		}
		loc, ok := r.try(ctx, s)
		if !ok {
			r.log.WithField("strategy", s.Name()).Debug("no location")
			continue
		}
		r.log.WithFields(logrus.Fields{
			"strategy": s.Name(),
			"timezone": loc.Timezone,
		}).Debug("location resolved")
		return Resolution{Location: loc, Source: s.Name()}
	}
	return Resolution{Location: r.fallback, Source: SourceDefault}
}

// Detect returns the resolved location.
func (r *Resolver) Detect(ctx context.Context) catalog.Location {
	return r.Resolve(ctx).Location
}

func (r *Resolver) try(ctx context.Context, s Strategy) (loc catalog.Location, ok bool) {
	defer func() {
		if v := recover(); v != nil {
			r.log.WithField("strategy", s.Name()).Warn(fmt.Sprintf("strategy panicked: %v", v))
			loc, ok = catalog.Location{}, false
		}
	}()
	loc, ok = s.Resolve(ctx)
	if ok && loc.Timezone == "" {
		return catalog.Location{}, false
	}
	return loc, ok
}

// Fallback returns the catalog entry for timezone as a location, or
// DefaultLocation when timezone is not in the catalog or does not load.
func Fallback(cat *catalog.Catalog, timezone string) catalog.Location {
	e, ok := cat.LookupTimezone(timezone)
	if !ok {
		return DefaultLocation
	}
	if _, err := tz.LoadLocation(e.Timezone); err != nil {
		return DefaultLocation
	}
	return e.Location()
}
