package transport

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"festProApi/internal/modules/realtime/domain"
	"festProApi/internal/modules/realtime/infrastructure"
	"festProApi/internal/shared/normalization"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const sendBuffer = 8

// NewUpdatesHandler exposes GET /ws/updates. A topics query parameter with
// comma-separated entity.action values narrows the stream; without it the
// client receives every change.
func NewUpdatesHandler(hub *infrastructure.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		topics := splitTopics(c.QueryParam("topics"))
		for _, topic := range topics {
			if entity, _, found := strings.Cut(topic, "."); found && !normalization.IsValidEntity(entity) {
				slog.Warn("ws subscription to unknown entity", slog.String("topic", topic), slog.String("remote", c.RealIP()))
			}
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.String("remote", c.RealIP()), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, sendBuffer)
		hub.Attach(client, topics)

		go client.WritePump()
		go client.ReadPump()

		client.Send(&domain.Message{
			Topic:     "system.connected",
			Entity:    "system",
			Action:    "connected",
			Data:      map[string]any{"topics": topics},
			Timestamp: time.Now().UTC(),
		})
		return nil
	}
}

// splitTopics parses the comma-separated topic list and canonicalizes the
// entity segment, so "menu.created" subscribes to "menuitems.created".
func splitTopics(raw string) []string {
	topics := []string{}
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if entity, action, found := strings.Cut(trimmed, "."); found {
			if canonical := normalization.NormalizeEntity(entity); canonical != "" {
				trimmed = canonical + "." + action
			}
		}
		topics = append(topics, trimmed)
	}
	return topics
}
