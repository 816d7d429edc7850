package port

import (
	"context"
	"errors"

	"festProApi/internal/modules/restaurant/domain"
)

// ErrStore marks failures of the underlying document store.
var ErrStore = errors.New("restaurant store unavailable")

// RestaurantRepository persists the single restaurant profile.
type RestaurantRepository interface {
	// Get returns the profile, domain.ErrNotFound when the store is empty.
	Get(ctx context.Context) (domain.Restaurant, error)
	// Replace stores the candidate as the one profile document, creating it
	// when absent. Last write wins; there is no conflict detection.
	Replace(ctx context.Context, candidate domain.Restaurant) (domain.Restaurant, error)
}
