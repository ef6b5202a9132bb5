// Package notify raises a desktop notification when a new track starts.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string  // image path, shown as the notification picture
	Timeout    int32   // ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32  // id of a previous notification to update in place
	Urgency    Urgency
}

// Notifier delivers notifications.
type Notifier interface {
	// Notify shows n and returns its server id, 0 when nothing was shown.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// nopNotifier drops every notification. It stands in when there is no
// notification server to talk to.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Close(uint32) error { return nil }
