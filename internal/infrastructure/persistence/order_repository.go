package persistence

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meatdelivery/backend/internal/domain/ordering"
	"github.com/meatdelivery/backend/internal/infrastructure/persistence/models"
)

// MongoOrderRepository implements ordering.OrderRepository using the document store
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new MongoOrderRepository
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection(CollectionOrders)}
}

// Create creates a new order
func (r *MongoOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	_, err := r.collection.InsertOne(ctx, models.FromOrder(order))
	return err
}

// FindByCustomerID returns all orders owned by a customer
func (r *MongoOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*ordering.Order, error) {
	return r.find(ctx, bson.M{"customer_id": customerID.String()})
}

// FindAll returns all orders
func (r *MongoOrderRepository) FindAll(ctx context.Context) ([]*ordering.Order, error) {
	return r.find(ctx, bson.M{})
}

// Count returns the total number of orders
func (r *MongoOrderRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]*ordering.Order, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]*ordering.Order, 0)
	for cursor.Next(ctx) {
		var doc models.OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		order, err := doc.ToDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, cursor.Err()
}
