//go:build linux

package localzone

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	timedateName  = "org.freedesktop.timedate1"
	timedatePath  = dbus.ObjectPath("/org/freedesktop/timedate1")
	propertiesGet = "org.freedesktop.DBus.Properties.Get"
)

// busTimeout bounds connecting to the system bus and reading the property.
var busTimeout = 2 * time.Second

// DBus reads the zone configured in systemd-timedated over the system bus.
func DBus() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), busTimeout)
	defer cancel()

	conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("connect system bus: %w", err)
	}
	defer conn.Close()

	var v dbus.Variant
	err = conn.Object(timedateName, timedatePath).
		CallWithContext(ctx, propertiesGet, 0, timedateName, "Timezone").
		Store(&v)
	if err != nil {
		return "", fmt.Errorf("read timedate1 Timezone: %w", err)
	}
	zone, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("timedate1 Timezone is %s, not a string", v.Signature())
	}
	if zone == "" {
		return "", fmt.Errorf("timedate1 reports no timezone")
	}
	return zone, nil
}
