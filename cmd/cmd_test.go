package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/config"
	"github.com/agent-platform/tools/yearprogress/internal/logging"
	"github.com/agent-platform/tools/yearprogress/internal/progress"
	"github.com/agent-platform/tools/yearprogress/internal/ui"
)

// run executes the root command with fresh flag state and a config file
// that does not exist, so defaults apply unless args say otherwise.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, logLevel, noColor = "", "", false
	showZone, showAt, showJSON = "", "", false
	zonesExport = ""
	locateJSON = false
	defer ui.SetColor(true)

	full := append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--no-color", "--log-level", "error"}, args...)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(full)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// setupWith builds the app from the config file at cfgPath.
func setupWith(t *testing.T, cfgPath string) *app {
	t.Helper()
	cfgFile, logLevel = cfgPath, "error"
	defer func() { cfgFile, logLevel = "", "" }()
	a, err := setup(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// zoneTabConfig writes a config whose zone table lists zones the bundled
// catalog lacks, and returns its path.
func zoneTabConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	tab := filepath.Join(dir, "zone.tab")
	data := "# test zones\nLT\t+5441+02519\tEurope/Vilnius\nBT\t+2728+08939\tAsia/Thimphu\nZZ\t+0000+00000\tNot/AZone\n"
	if err := os.WriteFile(tab, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Catalog.ZoneTab = tab
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := config.Save(cfgPath, &cfg); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

func TestShowZoneAt(t *testing.T) {
	out, err := run(t, "show", "--zone", "Asia/Tokyo", "--at", "2026-07-02T03:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Tokyo, Japan", "50.00% of 2026 completed", "Thursday, July 2, 2026 at 12:00:00 PM"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowJSON(t *testing.T) {
	out, err := run(t, "show", "--zone", "Europe/London", "--at", "2026-01-01T00:00:00Z", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Location catalog.Location  `json:"location"`
		Progress progress.Progress `json:"progress"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Location.Timezone != "Europe/London" || got.Progress.Percentage != 0 || got.Progress.DaysRemaining != 365 {
		t.Errorf("got %+v", got)
	}
}

func TestShowErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown zone", []string{"show", "--zone", "Not/AZone"}},
		{"bad instant", []string{"show", "--zone", "UTC", "--at", "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestZones(t *testing.T) {
	out, err := run(t, "zones", "tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Asia/Tokyo") || !strings.Contains(out, "UTC+9") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "zones", "nowhere-at-all")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No timezones found") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestZonesExportAndLoad(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "catalog.db")
	if _, err := run(t, "zones", "--export", db); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Catalog.Database = db
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := config.Save(cfgPath, &cfg); err != nil {
		t.Fatal(err)
	}

	a := setupWith(t, cfgPath)
	if a.cat.Len() != catalog.Default().Len() {
		t.Errorf("loaded %d entries, want %d", a.cat.Len(), catalog.Default().Len())
	}
}

func TestZonesIncludeZoneTable(t *testing.T) {
	out, err := run(t, "--config", zoneTabConfig(t), "zones", "vilnius")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Europe/Vilnius") || !strings.Contains(out, "Lithuania") {
		t.Errorf("unexpected output:\n%s", out)
	}

	a := setupWith(t, zoneTabConfig(t))
	if a.full.Len() != a.cat.Len()+2 {
		t.Errorf("full catalog has %d entries, want %d", a.full.Len(), a.cat.Len()+2)
	}
	if _, ok := a.cat.LookupTimezone("Europe/Vilnius"); ok {
		t.Error("detection catalog picked up zone table entries")
	}
}

func TestPickZoneTableEntry(t *testing.T) {
	var gotOptions []string
	selectFunc = func(_ string, options []string) (string, error) {
		gotOptions = options
		return options[0], nil
	}
	defer func() { selectFunc = selectOption }()

	out, err := run(t, "--config", zoneTabConfig(t), "pick", "thimphu")
	if err != nil {
		t.Fatal(err)
	}
	if len(gotOptions) != 1 || !strings.Contains(gotOptions[0], "Asia/Thimphu") {
		t.Errorf("options = %v", gotOptions)
	}
	if !strings.Contains(out, "Thimphu, Bhutan") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLogToFile(t *testing.T) {
	defer logging.SetOutput(os.Stderr)

	dir := t.TempDir()
	a := &app{cfgPath: filepath.Join(dir, "config.yaml")}
	restore := a.logToFile()
	if logrus.StandardLogger().Out == os.Stderr {
		restore()
		t.Fatal("logging still goes to stderr")
	}
	logging.For("tui").Error("geolocation failed")
	restore()

	if logrus.StandardLogger().Out != os.Stderr {
		t.Error("stderr not restored")
	}
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "geolocation failed") {
		t.Errorf("log file missing entry: %q", data)
	}

	a.cfgPath = ""
	restore = a.logToFile()
	if logrus.StandardLogger().Out != io.Discard {
		t.Error("no config dir: logging not discarded")
	}
	restore()
}

func TestZoneLocation(t *testing.T) {
	cat := catalog.Default()
	a := &app{cat: cat, full: cat, cfg: func() *config.Config { c := config.DefaultConfig(); return &c }()}

	loc, err := a.zoneLocation(context.Background(), "Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	if loc.City != "Mumbai" {
		t.Errorf("catalog zone: got %+v", loc)
	}

	loc, err = a.zoneLocation(context.Background(), "America/Argentina/Salta")
	if err != nil {
		t.Fatal(err)
	}
	if loc.City != "Salta" || loc.Timezone != "America/Argentina/Salta" {
		t.Errorf("derived zone: got %+v", loc)
	}

	if _, err := a.zoneLocation(context.Background(), "Mars/Olympus_Mons"); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestPick(t *testing.T) {
	var gotOptions []string
	selectFunc = func(_ string, options []string) (string, error) {
		gotOptions = options
		for _, o := range options {
			if strings.Contains(o, "Asia/Tokyo") {
				return o, nil
			}
		}
		return "", errors.New("tokyo not offered")
	}
	defer func() { selectFunc = selectOption }()

	out, err := run(t, "pick", "japan")
	if err != nil {
		t.Fatal(err)
	}
	if len(gotOptions) != 1 {
		t.Errorf("options = %v", gotOptions)
	}
	if !strings.Contains(out, "Tokyo, Japan") || !strings.Contains(out, "of 2026 completed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPickErrors(t *testing.T) {
	selectFunc = func(string, []string) (string, error) { return "", errors.New("interrupt") }
	defer func() { selectFunc = selectOption }()

	if _, err := run(t, "pick"); err == nil || !strings.Contains(err.Error(), "interrupt") {
		t.Errorf("err = %v", err)
	}
	if _, err := run(t, "pick", "nowhere-at-all"); err == nil {
		t.Error("expected error for empty selection list")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfgFile = path
	defer func() { cfgFile = "" }()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Configuration initialized") {
		t.Errorf("unexpected output: %s", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# year whose progress is tracked") {
		t.Errorf("config missing comments:\n%s", data)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TargetYear != config.TargetYear {
		t.Errorf("TargetYear = %d", cfg.TargetYear)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"--config", path, "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "updated") {
		t.Errorf("second init: %s", out.String())
	}
}
