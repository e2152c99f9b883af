package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meatdelivery/backend/internal/domain/identity"
	"github.com/meatdelivery/backend/internal/domain/shared"
	"github.com/meatdelivery/backend/internal/infrastructure/persistence/models"
)

// MongoAdminRepository implements identity.AdminRepository using the document store
type MongoAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoAdminRepository
func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{collection: db.Collection(CollectionAdmins)}
}

// Create creates a new admin
func (r *MongoAdminRepository) Create(ctx context.Context, admin *identity.Admin) error {
	_, err := r.collection.InsertOne(ctx, models.FromAdmin(admin))
	return err
}

// FindByUsername finds an admin by username
func (r *MongoAdminRepository) FindByUsername(ctx context.Context, username string) (*identity.Admin, error) {
	var doc models.AdminDocument
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return doc.ToDomain()
}

// ExistsByUsername checks if a username already exists
func (r *MongoAdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
