package infrastructure

import (
	"context"
	"errors"
	"testing"

	"festProApi/internal/modules/menu/application/port"
	"festProApi/internal/modules/menu/domain"
)

func TestCatalogCoversEveryCategory(t *testing.T) {
	catalog := NewCategoryPhotoCatalog()
	for _, category := range domain.Categories() {
		url, err := catalog.FindByCategory(context.Background(), category)
		if err != nil {
			t.Fatalf("expected photo for %s, got %v", category, err)
		}
		if url == "" {
			t.Fatalf("empty url for %s", category)
		}
	}
}

func TestCatalogMissReturnsErrNoStockPhoto(t *testing.T) {
	catalog := NewCategoryPhotoCatalog()
	if _, err := catalog.FindByCategory(context.Background(), "Snacks"); !errors.Is(err, port.ErrNoStockPhoto) {
		t.Fatalf("expected ErrNoStockPhoto, got %v", err)
	}
}
