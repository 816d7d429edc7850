package broker

import (
	"encoding/json"
	"testing"
	"time"

	"festProApi/internal/platform/events"
)

func TestNewKafkaPublisherDisabledWithoutBrokers(t *testing.T) {
	if p := NewKafkaPublisher(nil, "festpro.events"); p != nil {
		t.Fatal("expected nil publisher without brokers")
	}
	if p := NewKafkaPublisher([]string{"localhost:9092"}, ""); p != nil {
		t.Fatal("expected nil publisher without topic")
	}
}

func TestEventWireFormat(t *testing.T) {
	event := events.Event{
		Entity:     "menuitems",
		Action:     events.ActionCreated,
		ResourceID: "65a0c1",
		Topic:      "menuitems.created",
		Data:       map[string]any{"nom": "Tarte Tatin"},
		Timestamp:  time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC),
	}

	value, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(value, &decoded); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if decoded["entity"] != "menuitems" {
		t.Fatalf("unexpected entity: %v", decoded["entity"])
	}
	if decoded["action"] != "created" {
		t.Fatalf("unexpected action: %v", decoded["action"])
	}
	if decoded["resourceId"] != "65a0c1" {
		t.Fatalf("unexpected resourceId: %v", decoded["resourceId"])
	}
	if decoded["topic"] != "menuitems.created" {
		t.Fatalf("unexpected topic: %v", decoded["topic"])
	}
}
