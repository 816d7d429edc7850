package infrastructure

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"festProApi/internal/modules/realtime/domain"
	"festProApi/internal/platform/events"
)

// Hub tracks connected dashboards and fans change messages out to them.
// Clients either subscribe to explicit entity.action topics or receive the
// whole stream.
type Hub struct {
	topics map[string]map[*Client]struct{}
	global map[*Client]struct{}
	mu     sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[*Client]struct{}),
		global: make(map[*Client]struct{}),
	}
}

// Attach registers the client. An empty topic list subscribes it to every
// broadcasted message.
func (h *Hub) Attach(c *Client, topics []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribed := make([]string, 0, len(topics))
	for _, topic := range topics {
		trimmed := strings.TrimSpace(topic)
		if trimmed == "" {
			continue
		}
		if h.topics[trimmed] == nil {
			h.topics[trimmed] = make(map[*Client]struct{})
		}
		h.topics[trimmed][c] = struct{}{}
		c.subscribed[trimmed] = struct{}{}
		subscribed = append(subscribed, trimmed)
	}
	if len(subscribed) == 0 {
		c.receiveAll = true
		h.global[c] = struct{}{}
	}
	slog.Info("ws client attached", slog.String("remote", c.remote), slog.Any("topics", subscribed), slog.Bool("all", c.receiveAll))
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	for topic := range c.subscribed {
		if subs, ok := h.topics[topic]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	if c.receiveAll {
		delete(h.global, c)
	}
	c.close()
	slog.Info("ws client detached", slog.String("remote", c.remote))
}

// Broadcast pushes the message to every subscriber of its topic plus the
// global subscribers. Slow clients are detached, never waited on.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	h.mu.RLock()
	subs := h.topics[msg.Topic]
	clients := make([]*Client, 0, len(subs)+len(h.global))
	for c := range subs {
		clients = append(clients, c)
	}
	for c := range h.global {
		if _, dup := subs[c]; dup {
			continue
		}
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}

// Publish lets the hub sit behind the change event fanout alongside the
// broker producer.
func (h *Hub) Publish(ctx context.Context, event events.Event) {
	h.Broadcast(ctx, &domain.Message{
		Topic:      event.Topic,
		Entity:     event.Entity,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		Data:       event.Data,
		Timestamp:  event.Timestamp,
	})
}

var _ events.Publisher = (*Hub)(nil)
