package events

import "context"

// Event types
const (
	EventNotificationCreated = "notification_created"
)

// StreamNotifications carries per-user notification events to the WS hub.
const StreamNotifications = "events:notifications"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
