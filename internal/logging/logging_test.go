package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	var buf bytes.Buffer
	if err := Setup(&buf, "debug"); err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	For("locate").Debug("geolocation skipped")

	out := buf.String()
	if !strings.Contains(out, "geolocation skipped") || !strings.Contains(out, "component=locate") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestSetupLevelFilters(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	var buf bytes.Buffer
	if err := Setup(&buf, "warn"); err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	For("locate").Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message logged at warn level: %q", buf.String())
	}
}

func TestSetupBadLevel(t *testing.T) {
	if err := Setup(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestToFile(t *testing.T) {
	defer SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "yearprogress.log")
	f, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile() error: %v", err)
	}
	For("tui").Warn("detection failed")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "detection failed") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestToFileBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ToFile(filepath.Join(blocker, "yearprogress.log")); err == nil {
		t.Fatal("expected error when the directory is a file")
	}
}
