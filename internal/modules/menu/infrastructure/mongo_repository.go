package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"festProApi/internal/modules/menu/application/port"
	"festProApi/internal/modules/menu/domain"
	"festProApi/internal/platform/storage"
)

// MenuMongoRepository persists menu items in the menuitems collection.
type MenuMongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMenuMongoRepository(db *mongo.Database) *MenuMongoRepository {
	return &MenuMongoRepository{coll: db.Collection(storage.MenuItemsCollection), now: time.Now}
}

func (r *MenuMongoRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.MenuItem, error) {
	filter := bson.M{}
	if onlyAvailable {
		filter["disponible"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "categorie", Value: 1}, {Key: "nom", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	defer cursor.Close(ctx)

	items := []domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	return items, nil
}

func (r *MenuMongoRepository) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	now := r.now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return domain.MenuItem{}, fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	return item, nil
}

func (r *MenuMongoRepository) Update(ctx context.Context, id string, patch domain.Patch) (domain.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An unparsable identity cannot resolve to a record.
		return domain.MenuItem{}, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}

	set := bson.M{"updated_at": r.now().UTC()}
	if patch.Nom != nil {
		set["nom"] = *patch.Nom
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Prix != nil {
		set["prix"] = *patch.Prix
	}
	if patch.Categorie != nil {
		set["categorie"] = *patch.Categorie
	}
	if patch.Disponible != nil {
		set["disponible"] = *patch.Disponible
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.MenuItem
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.MenuItem{}, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	return updated, nil
}

func (r *MenuMongoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ port.MenuRepository = (*MenuMongoRepository)(nil)
