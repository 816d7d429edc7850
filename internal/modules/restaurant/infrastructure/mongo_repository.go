package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"festProApi/internal/modules/restaurant/application/port"
	"festProApi/internal/modules/restaurant/domain"
	"festProApi/internal/platform/storage"
)

// RestaurantMongoRepository keeps the single profile document in the
// restaurants collection.
type RestaurantMongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewRestaurantMongoRepository(db *mongo.Database) *RestaurantMongoRepository {
	return &RestaurantMongoRepository{coll: db.Collection(storage.RestaurantsCollection), now: time.Now}
}

func (r *RestaurantMongoRepository) Get(ctx context.Context) (domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Restaurant{}, fmt.Errorf("empty store: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	return restaurant, nil
}

func (r *RestaurantMongoRepository) Replace(ctx context.Context, candidate domain.Restaurant) (domain.Restaurant, error) {
	now := r.now().UTC()
	candidate.UpdatedAt = now

	// Keep the existing identity and creation time across replacements. Two
	// concurrent replacements race; the last commit wins.
	existing, err := r.Get(ctx)
	switch {
	case err == nil:
		candidate.ID = existing.ID
		candidate.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		candidate.CreatedAt = now
	default:
		return domain.Restaurant{}, err
	}

	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)
	var replaced domain.Restaurant
	err = r.coll.FindOneAndReplace(ctx, bson.M{}, candidate, opts).Decode(&replaced)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("%w: %v", port.ErrStore, err)
	}
	return replaced, nil
}

var _ port.RestaurantRepository = (*RestaurantMongoRepository)(nil)
