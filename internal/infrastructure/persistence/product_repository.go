package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meatdelivery/backend/internal/domain/catalog"
	"github.com/meatdelivery/backend/internal/domain/shared"
	"github.com/meatdelivery/backend/internal/infrastructure/persistence/models"
)

// MongoProductRepository implements catalog.ProductRepository using the document store
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new MongoProductRepository
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection(CollectionProducts)}
}

// Create creates a new product
func (r *MongoProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	_, err := r.collection.InsertOne(ctx, models.FromProduct(product))
	return err
}

// Update replaces an existing product document
func (r *MongoProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": product.ID.String()}, models.FromProduct(product))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a product by ID
func (r *MongoProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id.String()})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a product by ID
func (r *MongoProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var doc models.ProductDocument
	if err := r.collection.FindOne(ctx, bson.M{"id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return doc.ToDomain()
}

// FindAll returns all products
func (r *MongoProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]*catalog.Product, 0)
	for cursor.Next(ctx) {
		var doc models.ProductDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		product, err := doc.ToDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, cursor.Err()
}

// Count returns the total number of products
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
