// Package mongo contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"bookshelf/config"
	"bookshelf/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Collection names inside the bookshelf database.
const (
	booksCollection    = "books"
	usersCollection    = "users"
	reviewsCollection  = "reviews"
	wishlistCollection = "wishlist"
)

// Params defines the dependencies required to open the store connection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Database wraps the shared client and exposes typed collection handles.
// One instance is shared by all in-flight requests; the driver pools
// connections internally.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects the shared client, verifies the connection, prepares the
// wishlist uniqueness index and registers the disconnect hook.
func New(ctx context.Context, params Params) (*Database, error) {
	opts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	database := &Database{
		client: client,
		db:     client.Database(params.Config.Mongo.Database),
	}

	if err := database.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	params.Logger.Info("Database connected",
		slog.String("database", params.Config.Mongo.Database))

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			disconnectCtx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from database")

			return errors.WithStack(client.Disconnect(disconnectCtx))
		},
	})

	return database, nil
}

// ensureIndexes creates the unique compound index that closes the wishlist
// check-then-insert race: a concurrent duplicate insert fails with a
// duplicate-key error instead of slipping through.
func (d *Database) ensureIndexes(ctx context.Context) error {
	_, err := d.Wishlist().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "bookId", Value: 1},
			{Key: "userEmail", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})

	return errors.Wrap(err, "failed to create wishlist index")
}

// Books returns the books collection handle.
func (d *Database) Books() *mongo.Collection {
	return d.db.Collection(booksCollection)
}

// Users returns the users collection handle.
func (d *Database) Users() *mongo.Collection {
	return d.db.Collection(usersCollection)
}

// Reviews returns the reviews collection handle.
func (d *Database) Reviews() *mongo.Collection {
	return d.db.Collection(reviewsCollection)
}

// Wishlist returns the wishlist collection handle.
func (d *Database) Wishlist() *mongo.Collection {
	return d.db.Collection(wishlistCollection)
}
