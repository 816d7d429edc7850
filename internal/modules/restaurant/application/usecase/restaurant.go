package usecase

import (
	"context"
	"errors"
	"log/slog"

	"festProApi/internal/modules/restaurant/application/port"
	"festProApi/internal/modules/restaurant/domain"
	"festProApi/internal/platform/events"
)

const entityName = "restaurants"

// RestaurantUseCase serves and updates the profile screen.
type RestaurantUseCase struct {
	repo      port.RestaurantRepository
	publisher events.Publisher
}

func NewRestaurantUseCase(repo port.RestaurantRepository, publisher events.Publisher) *RestaurantUseCase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &RestaurantUseCase{repo: repo, publisher: publisher}
}

// Get returns the stored profile. An empty store yields the default record so
// the UI always has something to render; the default is never persisted.
func (uc *RestaurantUseCase) Get(ctx context.Context) (domain.Restaurant, error) {
	restaurant, err := uc.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		slog.Info("restaurant profile missing, serving default record")
		return domain.Default(), nil
	}
	if err != nil {
		return domain.Restaurant{}, err
	}
	return restaurant, nil
}

// Update normalizes the submitted document and replaces the stored profile.
func (uc *RestaurantUseCase) Update(ctx context.Context, doc map[string]any) (domain.Restaurant, error) {
	candidate := domain.FromDocument(doc)

	updated, err := uc.repo.Replace(ctx, candidate)
	if err != nil {
		return domain.Restaurant{}, err
	}

	uc.publisher.Publish(ctx, events.NewEvent(entityName, events.ActionUpdated, updated.ID.Hex(), updated))
	slog.Info("restaurant profile updated", slog.String("id", updated.ID.Hex()), slog.String("nom", updated.Nom))
	return updated, nil
}
