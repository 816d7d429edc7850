package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"festProApi/internal/shared/logging"
)

// Collection names owned by this service.
const (
	RestaurantsCollection = "restaurants"
	MenuItemsCollection   = "menuitems"
)

// Connect opens a MongoDB client, verifies connectivity with a ping and
// returns a handle on the configured database.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	slog.Info("connecting to document store",
		slog.String("uri", logging.MaskConnectionString(uri)),
		slog.String("database", database),
	)

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout).
		SetSocketTimeout(timeout).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority())

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	slog.Info("document store connected", slog.String("database", database))
	return client, client.Database(database), nil
}
