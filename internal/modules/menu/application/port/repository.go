package port

import (
	"context"
	"errors"

	"festProApi/internal/modules/menu/domain"
)

// ErrStore marks failures of the underlying document store so the transport
// layer can answer with a stable error kind instead of driver internals.
var ErrStore = errors.New("menu store unavailable")

// MenuRepository persists menu items in the document store.
type MenuRepository interface {
	// List returns every item sorted by category then name. An empty store
	// yields an empty slice, never an error.
	List(ctx context.Context, onlyAvailable bool) ([]domain.MenuItem, error)
	// Create inserts the item and returns it with its generated identity.
	Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	// Update applies the patch to the identified item and returns the result.
	// Returns domain.ErrNotFound when the identity has no backing record.
	Update(ctx context.Context, id string, patch domain.Patch) (domain.MenuItem, error)
	// Delete removes the identified item, domain.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}

// ErrNoStockPhoto signals that the lookup has no photo for the category.
var ErrNoStockPhoto = errors.New("no stock photo for category")

// StockPhotoFinder resolves a fallback illustration for items created without
// an image. Lookups are best-effort; callers must tolerate failure.
type StockPhotoFinder interface {
	FindByCategory(ctx context.Context, category string) (string, error)
}
