package clipboard

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// KDE clipboard service coordinates on the session bus.
const (
	KlipperService = "org.kde.klipper"
	KlipperPath    = dbus.ObjectPath("/klipper")
	klipperMethod  = "org.kde.klipper.klipper.setClipboardContents"
)

// caller is the part of dbus.BusObject used here.
type caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Klipper writes to the KDE Plasma clipboard over D-Bus.
type Klipper struct {
	obj caller
}

// NewKlipper wraps a bus object for org.kde.klipper at /klipper.
func NewKlipper(obj caller) *Klipper {
	return &Klipper{obj: obj}
}

// WriteText implements Writer.
func (k *Klipper) WriteText(ctx context.Context, text string) error {
	call := k.obj.CallWithContext(ctx, klipperMethod, 0, text)
	if call.Err != nil {
		return fmt.Errorf("klipper: %w", call.Err)
	}
	return nil
}
