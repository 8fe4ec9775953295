// Package localzone determines the IANA identifier of the host's local
// timezone. The Go runtime only exposes time.Local, whose name is "Local"
// on most systems, so the identifier is recovered from the environment and
// the operating system.
package localzone

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"4d63.com/tz"
)

// Source returns a candidate timezone identifier.
type Source func() (string, error)

var errNoEnvSet = errors.New("TZ not set")

// Env reads the TZ environment variable. A TZ that is set but empty means UTC.
func Env() (string, error) {
	v, ok := os.LookupEnv("TZ")
	if !ok {
		return "", errNoEnvSet
	}
	v = strings.TrimPrefix(v, ":")
	if v == "" {
		return "UTC", nil
	}
	return v, nil
}

// Link returns a Source reading the zone name from a symlink such as
// /etc/localtime that points into a zoneinfo directory.
func Link(path string) Source {
	return func() (string, error) {
		target, err := os.Readlink(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		_, name, ok := strings.Cut(target, "zoneinfo/")
		if !ok || name == "" {
			return "", fmt.Errorf("%s points outside zoneinfo: %s", path, target)
		}
		return strings.TrimPrefix(name, "posix/"), nil
	}
}

// File returns a Source reading the zone name from a file holding a single
// identifier, such as Debian's /etc/timezone.
func File(path string) Source {
	return func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		name := strings.TrimSpace(string(b))
		if name == "" {
			return "", fmt.Errorf("%s is empty", path)
		}
		return name, nil
	}
}

// Runtime returns the name of time.Local when it is a real identifier.
func Runtime() (string, error) {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "", errors.New("runtime local zone has no identifier")
	}
	return name, nil
}

// Detect returns the first identifier produced by sources that names a
// loadable timezone. The returned error joins every source's failure.
func Detect(sources ...Source) (string, error) {
	var errs []error
	for _, src := range sources {
		name, err := src()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := tz.LoadLocation(name); err != nil {
			errs = append(errs, fmt.Errorf("load zone %q: %w", name, err))
			continue
		}
		return name, nil
	}
	if len(errs) == 0 {
		return "", errors.New("no timezone sources")
	}
	return "", errors.Join(errs...)
}

// System detects the host zone from TZ, the system bus where available,
// /etc/localtime, /etc/timezone and finally the Go runtime.
func System() (string, error) {
	return Detect(Env, DBus, Link("/etc/localtime"), File("/etc/timezone"), Runtime)
}
