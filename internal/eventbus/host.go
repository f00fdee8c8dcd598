// ABOUTME: Host notifications: named events reported to the page or process embedding the terminal
// ABOUTME: Navigation shortcuts go out as KEYEVENT; theme changes as background-color

package eventbus

// Host event names.
const (
	EventKey             = "KEYEVENT"
	EventBackgroundColor = "background-color"
)

// HostEvent is one notification for the embedding host.
type HostEvent struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HostBus carries host notifications.
type HostBus = Bus[HostEvent]

// NewHostBus returns an empty host notification bus.
func NewHostBus() *HostBus {
	return New[HostEvent]()
}
