//go:build linux

package notify

import (
	"html"
	"slices"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busMethod = "org.freedesktop.Notifications."

	appName = "Affirm"
)

// caller is the part of dbus.BusObject the notifier uses.
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

type dbusNotifier struct {
	obj    caller
	markup bool

	mu     sync.Mutex
	tagged map[string]uint32
}

// New returns a Notifier talking to the session bus notification daemon,
// or Disabled when there is no session bus.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Disabled{}, nil //nolint:nilerr // no session bus: notifications are off
	}
	return newDBusNotifier(conn.Object(busName, busPath)), nil
}

func newDBusNotifier(obj caller) *dbusNotifier {
	n := &dbusNotifier{obj: obj, tagged: make(map[string]uint32)}
	var caps []string
	if err := obj.Call(busMethod+"GetCapabilities", 0).Store(&caps); err == nil {
		n.markup = slices.Contains(caps, "body-markup")
	}
	return n
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	replaces := notif.ReplacesID
	if replaces == 0 && notif.Tag != "" {
		n.mu.Lock()
		replaces = n.tagged[notif.Tag]
		n.mu.Unlock()
	}

	body := notif.Body
	if n.markup {
		// Playlist titles are plain text.
		body = html.EscapeString(body)
	}

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("affirm"),
	}
	var id uint32
	err := n.obj.Call(busMethod+"Notify", 0,
		appName, replaces, notif.Icon, notif.Title, body,
		[]string{}, hints, notif.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}

	if notif.Tag != "" {
		n.mu.Lock()
		n.tagged[notif.Tag] = id
		n.mu.Unlock()
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	n.mu.Lock()
	for tag, tid := range n.tagged {
		if tid == id {
			delete(n.tagged, tag)
		}
	}
	n.mu.Unlock()
	return n.obj.Call(busMethod+"CloseNotification", 0, id).Err
}
