// Package apiclient is the typed data module used by the front-end tooling to
// talk to the back-office API. Every call carries the default JSON headers and
// a fixed request timeout; failures are classified as either an APIError
// (the server answered with an error envelope) or a transport error (no
// response at all).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// Horaires mirrors the operating hours slots of the profile record.
type Horaires struct {
	Midi string `json:"midi"`
	Soir string `json:"soir"`
}

// Capacite mirrors the seating capacity slots of the profile record.
type Capacite struct {
	Midi int `json:"midi"`
	Soir int `json:"soir"`
}

// Restaurant is the profile record as served by the API.
type Restaurant struct {
	ID          string   `json:"_id,omitempty"`
	Nom         string   `json:"nom"`
	Description string   `json:"description"`
	Adresse     string   `json:"adresse"`
	Telephone   string   `json:"telephone"`
	Email       string   `json:"email"`
	Horaires    Horaires `json:"horaires"`
	Capacite    Capacite `json:"capacite"`
	ImageURL    string   `json:"image_url"`
	Cuisine     []string `json:"cuisine,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
}

// MenuItem is one entry of the card as served by the API.
type MenuItem struct {
	ID          string  `json:"_id,omitempty"`
	Nom         string  `json:"nom"`
	Description string  `json:"description"`
	Prix        float64 `json:"prix"`
	Categorie   string  `json:"categorie"`
	Disponible  bool    `json:"disponible"`
	ImageURL    string  `json:"image_url"`
}

// APIError is an error envelope returned by the server. Transport failures
// (no response) are returned as plain wrapped errors instead.
type APIError struct {
	Status  int
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Kind, e.Message)
}

// Client wraps the REST surface of the back-office service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g. http://localhost:3001/api.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Health checks the service status endpoint.
func (c *Client) Health(ctx context.Context) error {
	var res struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &res); err != nil {
		return err
	}
	if res.Status != "OK" {
		return fmt.Errorf("unexpected health status %q", res.Status)
	}
	return nil
}

// GetRestaurant fetches the profile record. Errors are surfaced: the profile
// screen shows them instead of falling back.
func (c *Client) GetRestaurant(ctx context.Context) (Restaurant, error) {
	var restaurant Restaurant
	err := c.do(ctx, http.MethodGet, "/restaurant", nil, &restaurant)
	return restaurant, err
}

// UpdateRestaurant replaces the profile record and returns the normalized
// persisted version.
func (c *Client) UpdateRestaurant(ctx context.Context, candidate Restaurant) (Restaurant, error) {
	candidate.ID = ""
	var updated Restaurant
	err := c.do(ctx, http.MethodPut, "/restaurant", candidate, &updated)
	return updated, err
}

// GetMenu fetches the card. Errors are surfaced; use MenuOrDefault for the
// display path.
func (c *Client) GetMenu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MenuOrDefault returns the server card, or the bundled default card when the
// server fails or has nothing to show. Display only: the fallback is never
// written back.
func (c *Client) MenuOrDefault(ctx context.Context) []MenuItem {
	items, err := c.GetMenu(ctx)
	if err != nil {
		slog.Warn("menu fetch failed, using bundled card", slog.Any("error", err))
		return DefaultMenuItems()
	}
	if len(items) == 0 {
		slog.Info("menu empty, using bundled card")
		return DefaultMenuItems()
	}
	return items
}

// CreateMenuItem adds an entry to the card.
func (c *Client) CreateMenuItem(ctx context.Context, item MenuItem) (MenuItem, error) {
	item.ID = ""
	var created MenuItem
	err := c.do(ctx, http.MethodPost, "/menu", item, &created)
	return created, err
}

// UpdateMenuItem applies a partial update to the identified entry.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, fields map[string]any) (MenuItem, error) {
	var updated MenuItem
	err := c.do(ctx, http.MethodPut, "/menu/"+id, fields, &updated)
	return updated, err
}

// DeleteMenuItem removes the identified entry.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/menu/"+id, nil, nil)
}

// UploadImage sends a base64 image data URI and returns the hosted URL.
func (c *Client) UploadImage(ctx context.Context, dataURI string) (string, error) {
	body := map[string]string{"image": dataURI}
	var res struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload-image", body, &res); err != nil {
		return "", err
	}
	return res.ImageURL, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		slog.Error("api request failed", slog.String("method", method), slog.String("url", url), slog.Any("error", err))
		return fmt.Errorf("no response from %s %s: %w", method, url, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: res.StatusCode, Kind: "unknown", Message: res.Status}
		_ = json.NewDecoder(res.Body).Decode(apiErr)
		slog.Warn("api error response",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", res.StatusCode),
			slog.String("kind", apiErr.Kind),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", method, url, err)
	}
	return nil
}
