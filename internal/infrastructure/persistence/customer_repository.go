package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meatdelivery/backend/internal/domain/identity"
	"github.com/meatdelivery/backend/internal/domain/shared"
	"github.com/meatdelivery/backend/internal/infrastructure/persistence/models"
)

// MongoCustomerRepository implements identity.CustomerRepository using the document store
type MongoCustomerRepository struct {
	collection *mongo.Collection
}

// NewMongoCustomerRepository creates a new MongoCustomerRepository
func NewMongoCustomerRepository(db *mongo.Database) *MongoCustomerRepository {
	return &MongoCustomerRepository{collection: db.Collection(CollectionCustomers)}
}

// EnsureIndexes creates the unique email index. Registration also checks for an
// existing email before inserting, but only this index closes the race between
// two concurrent registrations with the same address.
func (r *MongoCustomerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create creates a new customer
func (r *MongoCustomerRepository) Create(ctx context.Context, customer *identity.Customer) error {
	_, err := r.collection.InsertOne(ctx, models.FromCustomer(customer))
	if mongo.IsDuplicateKeyError(err) {
		return shared.ErrDuplicateEmail
	}
	return err
}

// FindByID finds a customer by ID
func (r *MongoCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Customer, error) {
	var doc models.CustomerDocument
	if err := r.collection.FindOne(ctx, bson.M{"id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return doc.ToDomain()
}

// FindByEmail finds a customer by email
func (r *MongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*identity.Customer, error) {
	var doc models.CustomerDocument
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return doc.ToDomain()
}

// ExistsByEmail checks if an email is already registered
func (r *MongoCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of customers
func (r *MongoCustomerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
