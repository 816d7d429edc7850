package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMapperMapsRegisteredErrors(t *testing.T) {
	errNotFound := errors.New("record not found")
	mapper := NewErrorMapper().
		WithMapping(errNotFound, http.StatusNotFound, "not_found", "record not found")

	info := mapper.Map(fmt.Errorf("menu item abc: %w", errNotFound))
	if info.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", info.Status)
	}
	if info.Body.Kind != "not_found" {
		t.Fatalf("expected not_found kind, got %s", info.Body.Kind)
	}
}

func TestErrorMapperFallsBackToStoreError(t *testing.T) {
	mapper := NewErrorMapper()
	info := mapper.Map(errors.New("driver exploded"))
	if info.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", info.Status)
	}
	if info.Body.Kind != "store_error" {
		t.Fatalf("expected store_error kind, got %s", info.Body.Kind)
	}
	if info.Body.Message == "driver exploded" {
		t.Fatal("raw error text must not leak to clients")
	}
}

func TestErrorMapperContextErrors(t *testing.T) {
	mapper := NewErrorMapper()
	if info := mapper.Map(context.DeadlineExceeded); info.Status != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", info.Status)
	}
	if info := mapper.Map(context.Canceled); info.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", info.Status)
	}
}

func TestErrorMapperNilError(t *testing.T) {
	if info := NewErrorMapper().Map(nil); info.Status != http.StatusOK {
		t.Fatalf("expected 200 for nil error, got %d", info.Status)
	}
}
