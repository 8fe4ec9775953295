package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/config"
	"github.com/agent-platform/tools/yearprogress/internal/geoip"
	"github.com/agent-platform/tools/yearprogress/internal/locate"
	"github.com/agent-platform/tools/yearprogress/internal/localzone"
	"github.com/agent-platform/tools/yearprogress/internal/logging"
	"github.com/agent-platform/tools/yearprogress/internal/ui"
	"github.com/agent-platform/tools/yearprogress/internal/zonetab"
)

const logFileName = "yearprogress.log"

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "yearprogress",
	Short: "How far through the year are we, where you are",
	Long: `yearprogress shows how much of the target year has elapsed in your
local timezone. Your location is detected from the system timezone, then
IP geolocation, then the zone name itself, falling back to a default.

Usage:
  yearprogress init          Write a default configuration file
  yearprogress show          Print progress once
  yearprogress watch         Live view with a location picker
  yearprogress zones         List known timezones
  yearprogress locate        Show the detected location
  yearprogress pick          Choose a location and print progress`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			ui.SetColor(false)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.yearprogress/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides log_level in the config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// app is the wiring shared by the subcommands.
type app struct {
	cfg     *config.Config
	cfgPath string
	// cat is what detection matches against. full adds every zone in the
	// zone table and backs listing, picking and --zone.
	cat       *catalog.Catalog
	full      *catalog.Catalog
	countries zonetab.Table
	log       *logrus.Entry
}

func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, path, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, path, nil
}

func setup(ctx context.Context) (*app, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		return nil, err
	}
	log := logging.For("cli")

	a := &app{cfg: cfg, cfgPath: path, log: log}
	a.cat = loadCatalog(ctx, cfg, log)
	a.countries = loadZoneTab(cfg, log)
	a.full = a.cat.WithZones(a.countries)
	log.WithField("entries", a.full.Len()).Debug("built full timezone catalog")
	return a, nil
}

// logToFile sends logging to yearprogress.log next to the config file while
// a full-screen view owns the terminal. Logs are dropped when the file cannot
// be opened. The returned func restores stderr.
func (a *app) logToFile() func() {
	if a.cfgPath == "" {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(os.Stderr) }
	}
	path := filepath.Join(filepath.Dir(a.cfgPath), logFileName)
	f, err := logging.ToFile(path)
	if err != nil {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(os.Stderr) }
	}
	return func() {
		logging.SetOutput(os.Stderr)
		f.Close()
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config, log *logrus.Entry) *catalog.Catalog {
	if cfg.Catalog.Database == "" {
		return catalog.Default()
	}
	path := config.ExpandHome(cfg.Catalog.Database)
	cat, skipped, err := catalog.LoadSQLite(ctx, path)
	for _, zone := range skipped {
		log.WithField("path", path).WithField("timezone", zone).Warn("skipping unknown timezone in catalog")
	}
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("using bundled timezone catalog")
		return catalog.Default()
	}
	log.WithField("entries", cat.Len()).Debug("loaded timezone catalog")
	return cat
}

func loadZoneTab(cfg *config.Config, log *logrus.Entry) zonetab.Table {
	if cfg.Catalog.ZoneTab == "" {
		return zonetab.Default()
	}
	path := config.ExpandHome(cfg.Catalog.ZoneTab)
	t, err := zonetab.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("using system zone table")
		return zonetab.Default()
	}
	return t
}

func (a *app) resolver() *locate.Resolver {
	opts := locate.Options{
		Zone:            localzone.System,
		Countries:       a.countries,
		GeoIP:           a.geoIP(),
		DefaultTimezone: a.cfg.DefaultTimezone,
		Log:             logging.For("locate"),
	}
	return locate.Standard(a.cat, opts)
}

// geoIP returns the geolocation client, or nil when it is disabled.
func (a *app) geoIP() locate.Lookuper {
	if !a.cfg.GeoIP.Enabled {
		return nil
	}
	return geoip.New(a.cfg.GeoIP.Endpoint, a.cfg.GeoIP.Timeout)
}

// zoneLocation turns a user-supplied timezone into a location. Catalog
// entries keep their city names; other valid zones are derived from the
// zone identifier.
func (a *app) zoneLocation(ctx context.Context, zone string) (catalog.Location, error) {
	if e, ok := a.full.LookupTimezone(zone); ok {
		return e.Location(), nil
	}
	s := locate.ZoneName(a.full, func() (string, error) { return zone, nil }, a.countries)
	loc, ok := s.Resolve(ctx)
	if !ok {
		return catalog.Location{}, fmt.Errorf("unknown timezone %q", zone)
	}
	return loc, nil
}
