package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newCORSEcho(allowed []string) *echo.Echo {
	e := echo.New()
	e.Use(CORSWithAllowList(allowed))
	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return e
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	e := newCORSEcho([]string{"https://festb2b.netlify.app", "http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowCredentials); got != "true" {
		t.Fatalf("expected credentials header, got %q", got)
	}
}

func TestCORSRejectsUnknownOriginWithBody(t *testing.T) {
	e := newCORSEcho([]string{"https://festb2b.netlify.app"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body corsRejectedBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Kind != "cors_rejected" {
		t.Fatalf("expected cors_rejected kind, got %s", body.Kind)
	}
	if body.Origin != "https://evil.example.com" {
		t.Fatalf("expected echoed origin, got %s", body.Origin)
	}
	if len(body.AllowedOrigins) != 1 {
		t.Fatalf("expected allow list in body, got %v", body.AllowedOrigins)
	}
}

func TestCORSPassesOriginlessRequests(t *testing.T) {
	e := newCORSEcho([]string{"https://festb2b.netlify.app"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for originless request, got %d", rec.Code)
	}
}

func TestCORSWildcardAllowsEverything(t *testing.T) {
	e := newCORSEcho([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://anywhere.example.org")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 under wildcard, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	e := newCORSEcho([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowMethods); got == "" {
		t.Fatal("expected allow-methods header on preflight")
	}
}
