package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/agent-platform/tools/yearprogress/internal/geoip"
)

// TargetYear is the year tracked when the config does not name one.
const TargetYear = 2026

// Config holds the application configuration.
type Config struct {
	TargetYear      int           `yaml:"target_year"`
	LogLevel        string        `yaml:"log_level"`
	DefaultTimezone string        `yaml:"default_timezone"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	GeoIP           GeoIPConfig   `yaml:"geoip"`
	Catalog         CatalogConfig `yaml:"catalog"`
}

// GeoIPConfig controls the IP geolocation lookup used during detection.
type GeoIPConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// CatalogConfig selects where timezone metadata comes from.
type CatalogConfig struct {
	Database string `yaml:"database"`
	ZoneTab  string `yaml:"zone_tab"`
}

// DefaultConfigDir returns the default configuration directory (~/.yearprogress).
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".yearprogress"), nil
}

// DefaultConfigPath returns the path to the default config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TargetYear:      TargetYear,
		LogLevel:        "info",
		DefaultTimezone: "America/New_York",
		RefreshInterval: time.Second,
		GeoIP: GeoIPConfig{
			Enabled:  true,
			Endpoint: geoip.DefaultEndpoint,
			Timeout:  5 * time.Second,
		},
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.TargetYear < 1 || c.TargetYear > 9999 {
		errs = append(errs, fmt.Errorf("target_year %d out of range", c.TargetYear))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.RefreshInterval < 100*time.Millisecond {
		errs = append(errs, fmt.Errorf("refresh_interval %s too short", c.RefreshInterval))
	}
	if c.GeoIP.Enabled && c.GeoIP.Timeout <= 0 {
		errs = append(errs, errors.New("geoip.timeout must be positive"))
	}
	return errors.Join(errs...)
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config at path, or the default path when path is
// empty. A missing file yields the defaults; nothing is written.
func LoadOrDefault(path string) (*Config, string, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			def := DefaultConfig()
			return &def, "", nil
		}
	}

	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			def := DefaultConfig()
			return &def, path, nil
		}
		return nil, path, err
	}
	return cfg, path, nil
}

// Save writes the config to disk, creating directories as needed.
func Save(path string, cfg *Config) error {
	return write(path, cfg, false)
}

// SaveWithComments writes the config with guidance comments for the
// optional settings. Used by `init` to generate a self-documenting file.
func SaveWithComments(path string, cfg *Config) error {
	return write(path, cfg, true)
}

func write(path string, cfg *Config, comments bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if comments {
		data = addConfigComments(data)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// addConfigComments inserts # comments into marshaled YAML for user guidance.
func addConfigComments(data []byte) []byte {
	var result []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		indent := line[:len(line)-len(trimmed)]

		switch {
		case strings.HasPrefix(trimmed, "target_year:"):
			result = append(result, line+" # year whose progress is tracked")

		case strings.HasPrefix(trimmed, "default_timezone:"):
			result = append(result, line+" # used when detection finds nothing")

		case strings.HasPrefix(trimmed, "enabled:") && indent != "":
			result = append(result, line+" # look up location by public IP when the system zone is unknown")

		case trimmed == `database: ""`:
			result = append(result,
				indent+"# SQLite file with a timezones(timezone, city, country, country_code, utc_offset)",
				indent+"# table to use instead of the built-in catalog:",
				indent+"#   database: ~/.yearprogress/catalog.db",
				line,
			)

		case trimmed == `zone_tab: ""`:
			result = append(result,
				indent+"# zone1970.tab used to find the country of zones missing from the catalog",
				indent+"# (default: the system tz database):",
				indent+"#   zone_tab: /usr/share/zoneinfo/zone1970.tab",
				line,
			)

		default:
			result = append(result, line)
		}
	}
	return []byte(strings.Join(result, "\n"))
}

// ExpandHome replaces a leading ~/ in path with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
