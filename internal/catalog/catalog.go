// Package catalog provides the read-only table of known timezones with their
// city, country and offset metadata, and the lookups used to turn a timezone
// identifier into a display-ready location.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"4d63.com/tz"
)

// UnknownCountry is the country code used when a location's country cannot
// be determined.
const UnknownCountry = "UN"

// Entry is one row of the catalog.
type Entry struct {
	Timezone    string  `json:"timezone"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	UTCOffset   float64 `json:"utc_offset"`
}

// Location is the resolved or selected place whose year progress is shown.
type Location struct {
	DisplayName string `json:"display_name"`
	Timezone    string `json:"timezone"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// Location returns the display location for the entry.
func (e Entry) Location() Location {
	return Location{
		DisplayName: DisplayName(e.City, e.Country),
		Timezone:    e.Timezone,
		CountryCode: e.CountryCode,
		City:        e.City,
		Country:     e.Country,
	}
}

// CurrentOffset returns the zone's UTC offset in hours at now. If the zone
// cannot be loaded the static catalog offset is returned.
func (e Entry) CurrentOffset(now time.Time) float64 {
	loc, err := tz.LoadLocation(e.Timezone)
	if err != nil {
		return e.UTCOffset
	}
	_, secs := now.In(loc).Zone()
	return float64(secs) / 3600
}

// DisplayName joins a city and country the way locations are titled.
func DisplayName(city, country string) string {
	switch {
	case city == "":
		return country
	case country == "":
		return city
	}
	return city + ", " + country
}

// Catalog is an immutable, ordered set of entries keyed by timezone.
// It is safe for concurrent use.
type Catalog struct {
	entries []Entry
	byZone  map[string]int
}

// New builds a catalog from entries. Entries are sorted by country, then
// city, then timezone. Empty, duplicate or unloadable timezones are
// rejected, so every zone a catalog hands out can be computed on.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byZone:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	sort.SliceStable(c.entries, func(i, j int) bool {
		a, b := c.entries[i], c.entries[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.Timezone < b.Timezone
	})

	for i, e := range c.entries {
		if e.Timezone == "" {
			return nil, fmt.Errorf("entry %q has empty timezone", DisplayName(e.City, e.Country))
		}
		if _, dup := c.byZone[e.Timezone]; dup {
			return nil, fmt.Errorf("duplicate timezone %q", e.Timezone)
		}
		if _, err := tz.LoadLocation(e.Timezone); err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", e.Timezone, err)
		}
		c.byZone[e.Timezone] = i
	}
	return c, nil
}

// Default returns the catalog built from the bundled table.
func Default() *Catalog {
	c, err := New(Bundled())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid bundled table: %v", err))
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// All returns every entry in catalog order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// LookupTimezone returns the entry whose timezone is exactly id.
func (c *Catalog) LookupTimezone(id string) (Entry, bool) {
	i, ok := c.byZone[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// LookupCountryCode returns the first entry, in catalog order, for the
// given ISO 3166-1 alpha-2 code. Matching is case-insensitive.
func (c *Catalog) LookupCountryCode(code string) (Entry, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Entry{}, false
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.CountryCode, code) {
			return e, true
		}
	}
	return Entry{}, false
}

// Search returns the entries whose city, country or timezone contains
// query, ignoring case. A blank query matches everything.
func (c *Catalog) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	var out []Entry
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.City), q) ||
			strings.Contains(strings.ToLower(e.Country), q) ||
			strings.Contains(strings.ToLower(e.Timezone), q) {
			out = append(out, e)
		}
	}
	return out
}

// FormatOffset renders an offset in hours as UTC+5:30, UTC-3 or UTC+0.
func FormatOffset(hours float64) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	mins := int(hours*60 + 0.5)
	h, m := mins/60, mins%60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}
