package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"4d63.com/tz"
	"github.com/google/go-cmp/cmp"
)

func TestBundledIsValid(t *testing.T) {
	c, err := New(Bundled())
	if err != nil {
		t.Fatalf("New(Bundled()) error: %v", err)
	}
	if c.Len() != len(Bundled()) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(Bundled()))
	}
	for _, e := range c.All() {
		if e.City == "" || e.Country == "" {
			t.Errorf("entry %q has empty city or country", e.Timezone)
		}
		if len(e.CountryCode) != 2 {
			t.Errorf("entry %q has country code %q", e.Timezone, e.CountryCode)
		}
		if _, err := tz.LoadLocation(e.Timezone); err != nil {
			t.Errorf("entry %q does not load: %v", e.Timezone, err)
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Entry{
		{Timezone: "Europe/Paris", City: "Paris", Country: "France", CountryCode: "FR"},
		{Timezone: "Europe/Paris", City: "Lyon", Country: "France", CountryCode: "FR"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate timezone")
	}
}

func TestNewRejectsEmptyTimezone(t *testing.T) {
	_, err := New([]Entry{{City: "Nowhere", Country: "Atlantis"}})
	if err == nil {
		t.Fatal("expected error for empty timezone")
	}
}

func TestNewRejectsUnloadableTimezone(t *testing.T) {
	_, err := New([]Entry{
		{Timezone: "Europe/London", City: "London", Country: "United Kingdom", CountryCode: "GB"},
		{Timezone: "Europe/Londn", City: "London", Country: "United Kingdom", CountryCode: "GB"},
	})
	if err == nil {
		t.Fatal("expected error for unloadable timezone")
	}
}

func TestAllOrdering(t *testing.T) {
	c, err := New([]Entry{
		{Timezone: "America/Los_Angeles", City: "Los Angeles", Country: "United States", CountryCode: "US"},
		{Timezone: "Europe/Berlin", City: "Berlin", Country: "Germany", CountryCode: "DE"},
		{Timezone: "America/Chicago", City: "Chicago", Country: "United States", CountryCode: "US"},
		{Timezone: "Australia/Sydney", City: "Sydney", Country: "Australia", CountryCode: "AU"},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var got []string
	for _, e := range c.All() {
		got = append(got, e.Timezone)
	}
	want := []string{"Australia/Sydney", "Europe/Berlin", "America/Chicago", "America/Los_Angeles"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].City = "Changed"
	if c.All()[0].City == "Changed" {
		t.Error("All() exposed internal storage")
	}
}

func TestLookupTimezone(t *testing.T) {
	c := Default()

	e, ok := c.LookupTimezone("Asia/Tokyo")
	if !ok {
		t.Fatal("LookupTimezone(Asia/Tokyo) not found")
	}
	want := Location{
		DisplayName: "Tokyo, Japan",
		Timezone:    "Asia/Tokyo",
		CountryCode: "JP",
		City:        "Tokyo",
		Country:     "Japan",
	}
	if diff := cmp.Diff(want, e.Location()); diff != "" {
		t.Errorf("Location() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := c.LookupTimezone("asia/tokyo"); ok {
		t.Error("LookupTimezone should be an exact match")
	}
	if _, ok := c.LookupTimezone("Mars/Olympus_Mons"); ok {
		t.Error("LookupTimezone(Mars/Olympus_Mons) should not be found")
	}
}

func TestLookupCountryCode(t *testing.T) {
	c := Default()

	tests := []struct {
		code     string
		wantZone string
		wantOK   bool
	}{
		{"AU", "Australia/Brisbane", true},
		{"us", "America/Anchorage", true},
		{"JP", "Asia/Tokyo", true},
		{"ZZ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			e, ok := c.LookupCountryCode(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("LookupCountryCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if e.Timezone != tt.wantZone {
				t.Errorf("LookupCountryCode(%q) = %q, want %q", tt.code, e.Timezone, tt.wantZone)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		query    string
		contains string
		wantLen  int
	}{
		{"city prefix", "lond", "Europe/London", 1},
		{"upper case", "TOKYO", "Asia/Tokyo", 1},
		{"country", "australia", "Australia/Perth", 4},
		{"timezone path", "argentina/", "America/Argentina/Buenos_Aires", 1},
		{"city not in zone name", "mumbai", "Asia/Kolkata", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.query)
			if len(got) != tt.wantLen {
				t.Errorf("Search(%q) returned %d entries, want %d", tt.query, len(got), tt.wantLen)
			}
			found := false
			for _, e := range got {
				if e.Timezone == tt.contains {
					found = true
				}
			}
			if !found {
				t.Errorf("Search(%q) missing %s", tt.query, tt.contains)
			}
		})
	}
}

func TestSearchNoMatchAndBlank(t *testing.T) {
	c := Default()
	if got := c.Search("atlantis"); len(got) != 0 {
		t.Errorf("Search(atlantis) = %d entries, want 0", len(got))
	}
	if got := c.Search("   "); len(got) != c.Len() {
		t.Errorf("Search(blank) = %d entries, want %d", len(got), c.Len())
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"US", "\U0001F1FA\U0001F1F8"},
		{"gb", "\U0001F1EC\U0001F1E7"},
		{"JP", "\U0001F1EF\U0001F1F5"},
		{"", Globe},
		{"ZZ-unmapped", Globe},
		{"U", Globe},
		{"U1", Globe},
		{"UN", Globe},
	}
	for _, tt := range tests {
		if got := Flag(tt.code); got != tt.want {
			t.Errorf("Flag(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "UTC+0"},
		{-5, "UTC-5"},
		{5.5, "UTC+5:30"},
		{5.75, "UTC+5:45"},
		{-3.5, "UTC-3:30"},
		{12, "UTC+12"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.hours); got != tt.want {
			t.Errorf("FormatOffset(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestCurrentOffset(t *testing.T) {
	summer := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	winter := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	ny := Entry{Timezone: "America/New_York", UTCOffset: -5}

	if got := ny.CurrentOffset(summer); got != -4 {
		t.Errorf("CurrentOffset(summer) = %v, want -4", got)
	}
	if got := ny.CurrentOffset(winter); got != -5 {
		t.Errorf("CurrentOffset(winter) = %v, want -5", got)
	}

	bogus := Entry{Timezone: "Invalid/Zone", UTCOffset: 3}
	if got := bogus.CurrentOffset(summer); got != 3 {
		t.Errorf("CurrentOffset for unknown zone = %v, want static 3", got)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("Paris", "France"); got != "Paris, France" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := DisplayName("", "France"); got != "France" {
		t.Errorf("DisplayName without city = %q", got)
	}
	if got := DisplayName("Paris", ""); got != "Paris" {
		t.Errorf("DisplayName without country = %q", got)
	}
}

func TestSQLiteExportAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	src, err := New([]Entry{
		{Timezone: "Europe/London", City: "London", Country: "United Kingdom", CountryCode: "GB"},
		{Timezone: "Asia/Kolkata", City: "Mumbai", Country: "India", CountryCode: "IN", UTCOffset: 5.5},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := ExportSQLite(ctx, path, src); err != nil {
		t.Fatalf("ExportSQLite() error: %v", err)
	}

	got, skipped, err := LoadSQLite(ctx, path)
	if err != nil {
		t.Fatalf("LoadSQLite() error: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
	if diff := cmp.Diff(src.All(), got.All()); diff != "" {
		t.Errorf("loaded catalog mismatch (-want +got):\n%s", diff)
	}
	if res := got.Search("lond"); len(res) != 1 {
		t.Errorf("Search(lond) on loaded catalog = %d entries, want 1", len(res))
	}
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	_, _, err := LoadSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	if err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestLoadSQLiteSkipsUnloadableRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	src, err := New([]Entry{
		{Timezone: "Europe/London", City: "London", Country: "United Kingdom", CountryCode: "GB"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := ExportSQLite(ctx, path, src); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	// Sorts ahead of London, so a country-code lookup would find it first.
	_, err = db.ExecContext(ctx, `INSERT INTO timezones (timezone, city, country, country_code, utc_offset)
		VALUES ('Europe/Londn', 'Bristol', 'United Kingdom', 'GB', 0)`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	got, skipped, err := LoadSQLite(ctx, path)
	if err != nil {
		t.Fatalf("LoadSQLite() error: %v", err)
	}
	if diff := cmp.Diff([]string{"Europe/Londn"}, skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
	if _, ok := got.LookupTimezone("Europe/Londn"); ok {
		t.Error("unloadable zone kept in catalog")
	}
	if e, ok := got.LookupCountryCode("GB"); !ok || e.Timezone != "Europe/London" {
		t.Errorf("LookupCountryCode(GB) = %+v, %v", e, ok)
	}
}

func TestLoadSQLiteOnlyUnloadableRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		t.Fatal(err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO timezones (timezone) VALUES ('Mars/Olympus_Mons')`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if _, skipped, err := LoadSQLite(ctx, path); err == nil || len(skipped) != 1 {
		t.Errorf("LoadSQLite() skipped = %v, err = %v; want one skipped and an error", skipped, err)
	}
}

func TestDerive(t *testing.T) {
	c := Default()
	tests := []struct {
		zone string
		code string
		want Entry
	}{
		{
			zone: "Europe/Vilnius",
			code: "lt",
			want: Entry{Timezone: "Europe/Vilnius", City: "Vilnius", Country: "Lithuania", CountryCode: "LT"},
		},
		{
			zone: "America/Argentina/Rio_Gallegos",
			code: "AR",
			want: Entry{Timezone: "America/Argentina/Rio_Gallegos", City: "Rio Gallegos", Country: "Argentina", CountryCode: "AR"},
		},
		{
			zone: "America/Indiana/Tell_City",
			code: "US",
			want: Entry{Timezone: "America/Indiana/Tell_City", City: "Tell City", Country: "United States", CountryCode: "US"},
		},
		{
			zone: "Antarctica/Dumont-DUrville",
			code: "",
			want: Entry{Timezone: "Antarctica/Dumont-DUrville", City: "Dumont DUrville", Country: "Antarctica", CountryCode: UnknownCountry},
		},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, c.Derive(tt.zone, tt.code)); diff != "" {
				t.Errorf("Derive() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithZones(t *testing.T) {
	base := Default()
	full := base.WithZones(map[string]string{
		"Europe/Vilnius": "LT",
		"Asia/Thimphu":   "BT",
		"Europe/London":  "GB",
		"Not/AZone":      "ZZ",
	})

	if full.Len() != base.Len()+2 {
		t.Errorf("Len() = %d, want %d", full.Len(), base.Len()+2)
	}
	if _, ok := full.LookupTimezone("Not/AZone"); ok {
		t.Error("unloadable zone added")
	}
	if e, _ := full.LookupTimezone("Europe/London"); e.City != "London" {
		t.Errorf("bundled entry replaced: %+v", e)
	}

	res := full.Search("vilnius")
	if len(res) != 1 || res[0].Country != "Lithuania" || res[0].UTCOffset == 0 {
		t.Errorf("Search(vilnius) = %+v", res)
	}
	if res := full.Search("thimphu"); len(res) != 1 || res[0].CountryCode != "BT" {
		t.Errorf("Search(thimphu) = %+v", res)
	}
	if _, ok := base.LookupTimezone("Europe/Vilnius"); ok {
		t.Error("base catalog modified")
	}

	if got := base.WithZones(nil); got != base {
		t.Error("WithZones(nil) built a new catalog")
	}
}
