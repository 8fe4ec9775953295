package catalog

import (
	"strings"
	"time"

	"4d63.com/tz"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var citySeparators = strings.NewReplacer("_", " ", "-", " ")

// Derive builds an entry for zone from the identifier itself. The city is the
// last path segment with separators replaced by spaces. The country name is
// taken from the catalog's entries for code, then the English region name;
// only an unknown code falls back to the zone's region segment.
func (c *Catalog) Derive(zone, code string) Entry {
	parts := strings.Split(zone, "/")
	city := citySeparators.Replace(parts[len(parts)-1])
	region := ""
	if len(parts) > 1 {
		region = parts[0]
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		code = UnknownCountry
	}

	country := region
	if code != UnknownCountry {
		if name := c.countryName(code); name != "" {
			country = name
		}
	}

	return Entry{
		Timezone:    zone,
		City:        city,
		Country:     country,
		CountryCode: code,
	}
}

func (c *Catalog) countryName(code string) string {
	if e, ok := c.LookupCountryCode(code); ok {
		return e.Country
	}
	r, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.Regions(language.English).Name(r)
}

// WithZones returns a catalog holding c's entries plus a derived entry for
// every zone in zones (zone to country code) that c lacks. Zones that do not
// load are skipped. c is returned unchanged when nothing is added.
func (c *Catalog) WithZones(zones map[string]string) *Catalog {
	now := time.Now()
	entries := c.All()
	for zone, code := range zones {
		if _, ok := c.byZone[zone]; ok || zone == "" {
			continue
		}
		if _, err := tz.LoadLocation(zone); err != nil {
			continue
		}
		e := c.Derive(zone, code)
		e.UTCOffset = e.CurrentOffset(now)
		entries = append(entries, e)
	}
	if len(entries) == c.Len() {
		return c
	}
	full, err := New(entries)
	if err != nil {
		return c
	}
	return full
}
