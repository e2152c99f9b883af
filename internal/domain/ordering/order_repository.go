package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *Order) error

	// FindByCustomerID returns all orders owned by a customer
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*Order, error)

	// FindAll returns all orders
	FindAll(ctx context.Context) ([]*Order, error)

	// Count returns the total number of orders
	Count(ctx context.Context) (int64, error)
}
