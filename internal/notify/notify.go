// Package notify shows desktop notifications over the freedesktop
// notification D-Bus interface.
package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	service    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	method     = "org.freedesktop.Notifications.Notify"

	// DefaultTimeoutMs is how long a notification stays visible.
	DefaultTimeoutMs int32 = 3000

	// Icon is the freedesktop icon name shown with notifications.
	Icon = "edit-copy"
)

type caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Notifier sends desktop notifications.
type Notifier struct {
	appName string
	icon    string
	obj     caller
	conn    *dbus.Conn
}

// Connect opens the session bus and returns a Notifier for appName.
func Connect(appName string) (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}

	n := New(appName, conn.Object(service, objectPath))
	n.conn = conn
	return n, nil
}

// New creates a Notifier around an existing bus object.
func New(appName string, obj caller) *Notifier {
	return &Notifier{appName: appName, icon: Icon, obj: obj}
}

// Notify shows a notification and returns the id the server assigned.
func (n *Notifier) Notify(ctx context.Context, summary, body string) (uint32, error) {
	call := n.obj.CallWithContext(ctx, method, 0,
		n.appName,
		uint32(0),
		n.icon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		DefaultTimeoutMs,
	)
	if call.Err != nil {
		return 0, fmt.Errorf("send notification: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("read notification id: %w", err)
	}
	return id, nil
}

// Close releases the bus connection opened by Connect.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
