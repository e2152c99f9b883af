package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meatdelivery/backend/internal/infrastructure/config"
)

// Collection names in the document store
const (
	CollectionAdmins    = "admins"
	CollectionCustomers = "customers"
	CollectionProducts  = "products"
	CollectionOrders    = "orders"
)

// Database holds the document store client and database handle
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase connects to the document store with the given configuration
func NewDatabase(ctx context.Context, cfg *config.MongoConfig) (*Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database),
	}, nil
}

// Close disconnects from the document store
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// Ping checks if the document store connection is alive
func (d *Database) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, nil)
}
