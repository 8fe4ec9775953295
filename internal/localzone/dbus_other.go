//go:build !linux

package localzone

import "errors"

// DBus is only available on Linux.
func DBus() (string, error) {
	return "", errors.New("system bus timezone lookup not supported")
}
