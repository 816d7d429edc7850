package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetRestaurantDecodesRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/restaurant" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Fatalf("missing default json header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"r1","nom":"Le Fest","horaires":{"midi":"12h","soir":"19h"},"capacite":{"midi":45,"soir":60}}`))
	}))
	defer server.Close()

	restaurant, err := New(server.URL + "/api").GetRestaurant(context.Background())
	if err != nil {
		t.Fatalf("get restaurant failed: %v", err)
	}
	if restaurant.Nom != "Le Fest" || restaurant.Capacite.Soir != 60 {
		t.Fatalf("unexpected record %+v", restaurant)
	}
}

func TestUpdateRestaurantStripsIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, found := body["_id"]; found {
			t.Fatalf("_id must not be sent on update: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"r1","nom":"Le Fest"}`))
	}))
	defer server.Close()

	updated, err := New(server.URL+"/api").UpdateRestaurant(context.Background(), Restaurant{ID: "stale", Nom: "Le Fest"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != "r1" {
		t.Fatalf("expected server identity back, got %+v", updated)
	}
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not_found","message":"menu item not found"}`))
	}))
	defer server.Close()

	_, err := New(server.URL+"/api").UpdateMenuItem(context.Background(), "missing", map[string]any{"prix": 9.0})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Kind != "not_found" {
		t.Fatalf("unexpected classification %+v", apiErr)
	}
}

func TestTransportFailuresAreNotAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := New(server.URL + "/api").GetMenu(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure misclassified as APIError: %v", err)
	}
}

func TestMenuOrDefaultFallsBack(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer empty.Close()

	items := New(empty.URL + "/api").MenuOrDefault(context.Background())
	if len(items) != len(DefaultMenuItems()) {
		t.Fatalf("expected bundled card on empty menu, got %d items", len(items))
	}

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"store_error","message":"menu store unavailable"}`))
	}))
	defer failing.Close()

	items = New(failing.URL + "/api").MenuOrDefault(context.Background())
	if len(items) == 0 || items[0].Nom != "Salade César" {
		t.Fatalf("expected bundled card on failure, got %v", items)
	}
}

func TestMenuOrDefaultPrefersServerCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"m1","nom":"Plat du jour","prix":18.5,"categorie":"Plats","disponible":true}]`))
	}))
	defer server.Close()

	items := New(server.URL + "/api").MenuOrDefault(context.Background())
	if len(items) != 1 || items[0].Nom != "Plat du jour" {
		t.Fatalf("expected server card, got %v", items)
	}
}

func TestUploadImageReturnsHostedURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["image"] == "" {
			t.Fatal("image field missing")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"imageUrl":"https://assets.example/fest/p.png"}`))
	}))
	defer server.Close()

	url, err := New(server.URL+"/api").UploadImage(context.Background(), "data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://assets.example/fest/p.png" {
		t.Fatalf("unexpected url %q", url)
	}
}
