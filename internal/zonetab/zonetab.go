// Package zonetab reads the IANA zone.tab and zone1970.tab files that map
// timezone identifiers to the countries that use them.
package zonetab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Table maps timezone identifiers to ISO 3166-1 alpha-2 country codes.
type Table map[string]string

// Country returns the country code for zone.
func (t Table) Country(zone string) (string, bool) {
	code, ok := t[zone]
	return code, ok
}

// Parse reads zone.tab formatted data. Lines are tab separated with the
// country code list in the first column and the zone in the third. When a
// zone lists several countries the first one is used.
func Parse(r io.Reader) (Table, error) {
	t := make(Table)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		codes, zone := fields[0], strings.TrimSpace(fields[2])
		code, _, _ := strings.Cut(codes, ",")
		if len(code) != 2 || zone == "" {
			continue
		}
		if _, seen := t[zone]; !seen {
			t[zone] = strings.ToUpper(code)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read zone table: %w", err)
	}
	return t, nil
}

// Load parses the zone table at path.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone table: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default loads the first zone table found in the system tz database.
// It returns an empty table when none is available.
func Default() Table {
	for _, p := range candidates() {
		if t, err := Load(p); err == nil {
			return t
		}
	}
	return Table{}
}

func candidates() []string {
	var dirs []string
	if dir := os.Getenv("ZONEINFO"); dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	dirs = append(dirs, "/usr/share/zoneinfo", "/usr/lib/zoneinfo", "/usr/share/lib/zoneinfo")

	var paths []string
	for _, d := range dirs {
		paths = append(paths, filepath.Join(d, "zone1970.tab"), filepath.Join(d, "zone.tab"))
	}
	return paths
}
