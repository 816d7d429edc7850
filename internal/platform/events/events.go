package events

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Actions carried by change events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a committed change to one of the store's collections.
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NewEvent builds an event with its topic derived as entity.action.
func NewEvent(entity, action, resourceID string, data any) Event {
	entity = strings.TrimSpace(entity)
	action = strings.TrimSpace(action)
	return Event{
		Entity:     entity,
		Action:     action,
		ResourceID: strings.TrimSpace(resourceID),
		Topic:      entity + "." + action,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}

// Publisher delivers change events to interested parties. Publishing is
// best-effort: write paths never fail because a publisher did.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Fanout delivers each event to every wrapped publisher.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) {
	for _, p := range f {
		if p == nil {
			continue
		}
		p.Publish(ctx, event)
	}
}

// Nop discards every event. Used when neither Kafka nor realtime streaming is
// configured.
type Nop struct{}

func (Nop) Publish(_ context.Context, event Event) {
	slog.Debug("event discarded", slog.String("topic", event.Topic), slog.String("resourceId", event.ResourceID))
}

var (
	_ Publisher = Fanout(nil)
	_ Publisher = Nop{}
)
