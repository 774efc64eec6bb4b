// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"github.com/dustin/go-humanize/english"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	// Tag groups notifications: a new one replaces the last one shown with
	// the same tag. Ignored when ReplacesID is set.
	Tag string
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// TagSession is the tag of session notifications. Finishing a second
// playlist replaces the first one's notification.
const TagSession = "session"

// SessionComplete builds the notification shown when a playlist plays to
// its last affirmation.
func SessionComplete(playlist string, count int) Notification {
	body := english.Plural(count, "affirmation", "") + " played"
	if count == 0 {
		body = "Nothing to play in this playlist"
	}
	return Notification{
		Title:   "Session complete: " + playlist,
		Body:    body,
		Icon:    "face-smile",
		Timeout: 5000,
		Urgency: UrgencyLow,
		Tag:     TagSession,
	}
}

// Disabled is a Notifier that drops everything. Used when notifications
// are turned off in settings.
type Disabled struct{}

func (Disabled) Notify(Notification) (uint32, error) { return 0, nil }
func (Disabled) Close(uint32) error                  { return nil }
