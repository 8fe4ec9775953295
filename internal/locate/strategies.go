package locate

import (
	"context"
	"strings"

	"4d63.com/tz"
	"github.com/bradfitz/latlong"
	"github.com/sirupsen/logrus"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/geoip"
	"github.com/agent-platform/tools/yearprogress/internal/logging"
)

// Strategy names, as reported in a Resolution.
const (
	SourceSystem = "system"
	SourceGeoIP  = "geoip"
	SourceZone   = "zone"
)

// ZoneFunc returns the ambient timezone identifier.
type ZoneFunc func() (string, error)

// Lookuper performs an IP geolocation lookup.
type Lookuper interface {
	Lookup(ctx context.Context) (geoip.Result, error)
}

// CountryLookup maps a timezone identifier to a country code.
type CountryLookup interface {
	Country(zone string) (string, bool)
}

// SystemZone succeeds when the ambient zone is exactly a catalog timezone.
func SystemZone(cat *catalog.Catalog, zone ZoneFunc) Strategy {
	return StrategyFunc(SourceSystem, func(context.Context) (catalog.Location, bool) {
		name, err := zone()
		if err != nil {
			return catalog.Location{}, false
		}
		e, ok := cat.LookupTimezone(name)
		if !ok {
			return catalog.Location{}, false
		}
		return e.Location(), true
	})
}

// GeoIP performs one geolocation lookup and matches it against the catalog
// by timezone, then by coordinates, then by country code. When nothing
// matches but the response names a city or country and a usable zone, the
// location is built from the response itself.
func GeoIP(cat *catalog.Catalog, client Lookuper, log *logrus.Entry) Strategy {
	if log == nil {
		log = logging.Discard()
	}
	return StrategyFunc(SourceGeoIP, func(ctx context.Context) (catalog.Location, bool) {
		res, err := client.Lookup(ctx)
		if err != nil {
			log.WithError(err).Warn("geolocation failed")
			return catalog.Location{}, false
		}
		if !res.Usable() {
			log.Debug("geolocation returned nothing usable")
			return catalog.Location{}, false
		}
		return fromGeoIP(cat, res)
	})
}

func fromGeoIP(cat *catalog.Catalog, res geoip.Result) (catalog.Location, bool) {
	if e, ok := cat.LookupTimezone(res.Timezone); ok {
		return e.Location(), true
	}

	var coordZone string
	if res.HasCoordinates() {
		coordZone = latlong.LookupZoneName(*res.Latitude, *res.Longitude)
		if e, ok := cat.LookupTimezone(coordZone); ok {
			return e.Location(), true
		}
	}

	if e, ok := cat.LookupCountryCode(res.CountryCode); ok {
		return e.Location(), true
	}

	if res.City == "" && res.CountryName == "" {
		return catalog.Location{}, false
	}
	zone := firstLoadable(res.Timezone, coordZone)
	if zone == "" {
		return catalog.Location{}, false
	}

	code := strings.ToUpper(strings.TrimSpace(res.CountryCode))
	if len(code) != 2 {
		code = catalog.UnknownCountry
	}
	return catalog.Location{
		DisplayName: catalog.DisplayName(res.City, res.CountryName),
		Timezone:    zone,
		CountryCode: code,
		City:        res.City,
		Country:     res.CountryName,
	}, true
}

// ZoneName derives a location from the ambient zone identifier itself. The
// city is the last path segment with separators replaced by spaces. The
// country code comes from the catalog or countries and is named by the
// catalog or the English region name; an unknown code keeps the zone's
// region.
func ZoneName(cat *catalog.Catalog, zone ZoneFunc, countries CountryLookup) Strategy {
	return StrategyFunc(SourceZone, func(context.Context) (catalog.Location, bool) {
		name, err := zone()
		if err != nil || name == "" {
			return catalog.Location{}, false
		}
		if _, err := tz.LoadLocation(name); err != nil {
			return catalog.Location{}, false
		}
		return fromZoneName(cat, name, countries), true
	})
}

func fromZoneName(cat *catalog.Catalog, name string, countries CountryLookup) catalog.Location {
	code := ""
	if e, ok := cat.LookupTimezone(name); ok {
		code = e.CountryCode
	} else if countries != nil {
		code, _ = countries.Country(name)
	}
	return cat.Derive(name, code).Location()
}

func firstLoadable(zones ...string) string {
	for _, z := range zones {
		if z == "" {
			continue
		}
		if _, err := tz.LoadLocation(z); err == nil {
			return z
		}
	}
	return ""
}

// Options configures Standard.
type Options struct {
	// Zone reports the ambient timezone. Required.
	Zone ZoneFunc
	// GeoIP is consulted when the ambient zone is not in the catalog.
	// Nil disables geolocation.
	GeoIP Lookuper
	// Countries maps zones to countries for the zone-name tier. Optional.
	Countries CountryLookup
	// DefaultTimezone selects the terminal fallback from the catalog.
	DefaultTimezone string
	Log             *logrus.Entry
}

// Standard builds the resolver chain: exact system zone match, IP
// geolocation, the ambient zone name, then the default location.
func Standard(cat *catalog.Catalog, opts Options) *Resolver {
	strategies := []Strategy{SystemZone(cat, opts.Zone)}
	if opts.GeoIP != nil {
		strategies = append(strategies, GeoIP(cat, opts.GeoIP, opts.Log))
	}
	strategies = append(strategies, ZoneName(cat, opts.Zone, opts.Countries))
	return New(Fallback(cat, opts.DefaultTimezone), opts.Log, strategies...)
}
