package usecase

import (
	"context"
	"log/slog"
	"strings"

	"festProApi/internal/modules/menu/application/port"
	"festProApi/internal/modules/menu/domain"
	"festProApi/internal/platform/events"
)

const entityName = "menuitems"

// MenuUseCase drives the menu item lifecycle: listing for the card screen and
// the create/update/delete flows of the back office.
type MenuUseCase struct {
	repo      port.MenuRepository
	photos    port.StockPhotoFinder
	publisher events.Publisher
}

func NewMenuUseCase(repo port.MenuRepository, photos port.StockPhotoFinder, publisher events.Publisher) *MenuUseCase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &MenuUseCase{repo: repo, photos: photos, publisher: publisher}
}

// List returns the card, optionally restricted to available items.
func (uc *MenuUseCase) List(ctx context.Context, onlyAvailable bool) ([]domain.MenuItem, error) {
	items, err := uc.repo.List(ctx, onlyAvailable)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

// Create validates the candidate, resolves a stock photo when the caller
// supplied no image, persists and announces the new item.
func (uc *MenuUseCase) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	item.Nom = strings.TrimSpace(item.Nom)
	item.Description = strings.TrimSpace(item.Description)
	if err := item.Validate(); err != nil {
		return domain.MenuItem{}, err
	}

	if strings.TrimSpace(item.ImageURL) == "" && uc.photos != nil {
		url, err := uc.photos.FindByCategory(ctx, item.Categorie)
		if err != nil {
			// Best-effort: the item is persisted without an image rather
			// than failing the whole create.
			slog.Warn("stock photo lookup failed", slog.String("categorie", item.Categorie), slog.Any("error", err))
			url = ""
		}
		item.ImageURL = url
	}

	created, err := uc.repo.Create(ctx, item)
	if err != nil {
		return domain.MenuItem{}, err
	}

	uc.publisher.Publish(ctx, events.NewEvent(entityName, events.ActionCreated, created.ID.Hex(), created))
	slog.Info("menu item created", slog.String("id", created.ID.Hex()), slog.String("nom", created.Nom), slog.String("categorie", created.Categorie))
	return created, nil
}

// Update re-validates the changed fields and applies the patch.
func (uc *MenuUseCase) Update(ctx context.Context, id string, patch domain.Patch) (domain.MenuItem, error) {
	if err := patch.Validate(); err != nil {
		return domain.MenuItem{}, err
	}

	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.MenuItem{}, err
	}

	uc.publisher.Publish(ctx, events.NewEvent(entityName, events.ActionUpdated, updated.ID.Hex(), updated))
	slog.Info("menu item updated", slog.String("id", updated.ID.Hex()))
	return updated, nil
}

// Delete removes the identified item.
func (uc *MenuUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publisher.Publish(ctx, events.NewEvent(entityName, events.ActionDeleted, id, nil))
	slog.Info("menu item deleted", slog.String("id", id))
	return nil
}
