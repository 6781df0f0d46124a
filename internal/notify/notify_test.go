package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusObject struct {
	method string
	args   []interface{}
	reply  []interface{}
	err    error
}

func (f *fakeBusObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = args
	return &dbus.Call{Err: f.err, Body: f.reply}
}

func TestNotifier_Notify(t *testing.T) {
	obj := &fakeBusObject{reply: []interface{}{uint32(42)}}
	n := New("go-gitmoji", obj)

	id, err := n.Notify(context.Background(), "Copied :bug:", "🐛")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	assert.Equal(t, "org.freedesktop.Notifications.Notify", obj.method)
	require.Len(t, obj.args, 8)
	assert.Equal(t, "go-gitmoji", obj.args[0])
	assert.Equal(t, uint32(0), obj.args[1])
	assert.Equal(t, "edit-copy", obj.args[2])
	assert.Equal(t, "Copied :bug:", obj.args[3])
	assert.Equal(t, "🐛", obj.args[4])
	assert.Equal(t, DefaultTimeoutMs, obj.args[7])
}

func TestNotifier_Notify_Error(t *testing.T) {
	obj := &fakeBusObject{err: errors.New("org.freedesktop.DBus.Error.ServiceUnknown")}

	_, err := New("go-gitmoji", obj).Notify(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ServiceUnknown")
}

func TestNotifier_Close_WithoutConnection(t *testing.T) {
	assert.NoError(t, New("go-gitmoji", &fakeBusObject{}).Close())
}
