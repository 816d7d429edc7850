package infrastructure

import (
	"context"
	"fmt"

	"festProApi/internal/modules/menu/application/port"
	"festProApi/internal/modules/menu/domain"
)

// categoryPhotos maps each menu category to a curated stock illustration.
var categoryPhotos = map[string]string{
	domain.CategoryStarters: "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?w=800&auto=format&fit=crop&q=60",
	domain.CategoryMains:    "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800&auto=format&fit=crop&q=60",
	domain.CategoryDesserts: "https://images.unsplash.com/photo-1562007908-17c67e878c6c?w=800&auto=format&fit=crop&q=60",
	domain.CategoryDrinks:   "https://images.unsplash.com/photo-1516594915697-87eb3b1c14ea?w=800&auto=format&fit=crop&q=60",
}

// CategoryPhotoCatalog serves stock photos from a fixed catalog keyed by
// category. It backs the create flow when the caller uploads no image.
type CategoryPhotoCatalog struct{}

func NewCategoryPhotoCatalog() CategoryPhotoCatalog {
	return CategoryPhotoCatalog{}
}

func (CategoryPhotoCatalog) FindByCategory(_ context.Context, category string) (string, error) {
	url, ok := categoryPhotos[category]
	if !ok {
		return "", fmt.Errorf("%q: %w", category, port.ErrNoStockPhoto)
	}
	return url, nil
}

var _ port.StockPhotoFinder = CategoryPhotoCatalog{}
