// Package doctor reports on the pieces location detection depends on.
package doctor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/config"
	"github.com/agent-platform/tools/yearprogress/internal/locate"
	"github.com/agent-platform/tools/yearprogress/internal/ui"
	"github.com/agent-platform/tools/yearprogress/internal/zonetab"
)

// Status represents the result of a health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string
	Status  Status
	Message string
}

// Env is what the checks inspect.
type Env struct {
	Config     *config.Config
	ConfigPath string
	Catalog    *catalog.Catalog
	Countries  zonetab.Table
	// Zone reports the ambient timezone.
	Zone locate.ZoneFunc
	// GeoIP is nil when geolocation is disabled.
	GeoIP locate.Lookuper
}

// Check is a single health check function.
type Check func(ctx context.Context, env Env) Result

// Run executes all checks and prints a diagnostic report. It returns the
// number of failed checks.
func Run(ctx context.Context, w io.Writer, env Env) int {
	checks := []Check{
		CheckConfigFile,
		CheckCatalog,
		CheckZoneTab,
		CheckSystemZone,
		CheckDefaultTimezone,
		CheckGeoIP,
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Boldf("  yearprogress doctor"))
	fmt.Fprintln(w)

	var fails int
	for _, check := range checks {
		result := check(ctx, env)
		fmt.Fprintf(w, "  %s  %s\n", statusIcon(result.Status), result.Message)
		if result.Status == StatusFail {
			fails++
		}
	}

	fmt.Fprintln(w)
	if fails == 0 {
		fmt.Fprintln(w, ui.Greenf("  All checks passed!"))
	} else {
		fmt.Fprintln(w, ui.Redf("  %d check(s) failed", fails))
	}
	fmt.Fprintln(w)
	return fails
}

func statusIcon(s Status) string {
	switch s {
	case StatusPass:
		return ui.Greenf("PASS")
	case StatusWarn:
		return ui.Yellowf("WARN")
	case StatusFail:
		return ui.Redf("FAIL")
	default:
		return "????"
	}
}

// CheckConfigFile reports whether a config file is in use.
func CheckConfigFile(_ context.Context, env Env) Result {
	if env.ConfigPath == "" {
		return Result{Name: "config", Status: StatusWarn,
			Message: "Config file: no home directory, using defaults"}
	}
	if _, err := os.Stat(env.ConfigPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: "config", Status: StatusWarn,
				Message: fmt.Sprintf("Config file: %s not found, using defaults (run 'yearprogress init')", env.ConfigPath)}
		}
		return Result{Name: "config", Status: StatusFail,
			Message: fmt.Sprintf("Config file: cannot stat %s: %v", env.ConfigPath, err)}
	}
	return Result{Name: "config", Status: StatusPass,
		Message: fmt.Sprintf("Config file: %s loaded", env.ConfigPath)}
}

// CheckCatalog verifies the configured catalog database, or reports the
// bundled catalog when none is configured.
func CheckCatalog(ctx context.Context, env Env) Result {
	if env.Config.Catalog.Database == "" {
		return Result{Name: "catalog", Status: StatusPass,
			Message: fmt.Sprintf("Catalog: built-in, %d timezones", env.Catalog.Len())}
	}

	path := config.ExpandHome(env.Config.Catalog.Database)
	if _, err := os.Stat(path); err != nil {
		return Result{Name: "catalog", Status: StatusFail,
			Message: fmt.Sprintf("Catalog: cannot open %s: %v", path, err)}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return Result{Name: "catalog", Status: StatusFail,
			Message: fmt.Sprintf("Catalog: cannot open %s: %v", path, err)}
	}
	defer db.Close()

	var result string
	if err := db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&result); err != nil {
		return Result{Name: "catalog", Status: StatusFail,
			Message: fmt.Sprintf("Catalog: integrity check failed: %v", err)}
	}
	if result != "ok" {
		return Result{Name: "catalog", Status: StatusFail,
			Message: fmt.Sprintf("Catalog: integrity check: %s", result)}
	}

	cat, skipped, err := catalog.LoadSQLite(ctx, path)
	if err != nil {
		return Result{Name: "catalog", Status: StatusFail,
			Message: fmt.Sprintf("Catalog: %v", err)}
	}
	if len(skipped) > 0 {
		return Result{Name: "catalog", Status: StatusWarn,
			Message: fmt.Sprintf("Catalog: %s OK, %d timezones, %d skipped (unknown zones: %v)", path, cat.Len(), len(skipped), skipped)}
	}
	return Result{Name: "catalog", Status: StatusPass,
		Message: fmt.Sprintf("Catalog: %s OK, %d timezones", path, cat.Len())}
}

// CheckZoneTab reports whether zone-to-country data is available.
func CheckZoneTab(_ context.Context, env Env) Result {
	if len(env.Countries) == 0 {
		return Result{Name: "zonetab", Status: StatusWarn,
			Message: "Zone table: not found, zones outside the catalog get no country"}
	}
	return Result{Name: "zonetab", Status: StatusPass,
		Message: fmt.Sprintf("Zone table: %d zones", len(env.Countries))}
}

// CheckSystemZone reports the ambient timezone and whether the catalog
// knows it.
func CheckSystemZone(_ context.Context, env Env) Result {
	zone, err := env.Zone()
	if err != nil {
		return Result{Name: "system_zone", Status: StatusWarn,
			Message: fmt.Sprintf("System zone: not detected: %v", err)}
	}
	if e, ok := env.Catalog.LookupTimezone(zone); ok {
		return Result{Name: "system_zone", Status: StatusPass,
			Message: fmt.Sprintf("System zone: %s (%s)", zone, catalog.DisplayName(e.City, e.Country))}
	}
	return Result{Name: "system_zone", Status: StatusPass,
		Message: fmt.Sprintf("System zone: %s (not in catalog, geolocation or the zone name will be used)", zone)}
}

// CheckDefaultTimezone verifies default_timezone names a catalog entry.
func CheckDefaultTimezone(_ context.Context, env Env) Result {
	zone := env.Config.DefaultTimezone
	if _, ok := env.Catalog.LookupTimezone(zone); !ok {
		return Result{Name: "default_timezone", Status: StatusWarn,
			Message: fmt.Sprintf("Default timezone: %q not in catalog, %s will be used", zone, locate.DefaultLocation.DisplayName)}
	}
	return Result{Name: "default_timezone", Status: StatusPass,
		Message: fmt.Sprintf("Default timezone: %s", zone)}
}

// CheckGeoIP performs one geolocation lookup. Failures only warn since
// detection falls back to the zone name.
func CheckGeoIP(ctx context.Context, env Env) Result {
	if env.GeoIP == nil {
		return Result{Name: "geoip", Status: StatusPass,
			Message: "Geolocation: disabled (OK)"}
	}
	res, err := env.GeoIP.Lookup(ctx)
	if err != nil {
		return Result{Name: "geoip", Status: StatusWarn,
			Message: fmt.Sprintf("Geolocation: %v", err)}
	}
	if !res.Usable() {
		return Result{Name: "geoip", Status: StatusWarn,
			Message: "Geolocation: response had no usable location"}
	}
	return Result{Name: "geoip", Status: StatusPass,
		Message: fmt.Sprintf("Geolocation: %s, %s (%s)", res.City, res.CountryCode, res.Timezone)}
}
