package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meatdelivery/backend/internal/domain/shared"
)

// OrderStatus represents the status of an order
type OrderStatus string

// Orders are immutable after placement, so pending is the only status in use.
const OrderStatusPending OrderStatus = "pending"

// OrderItem is a single line of an order.
// Price is the unit price the client submitted at placement time; it is
// recorded as-is and not recomputed from the catalog.
type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// Order represents a customer order
type Order struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Items       []OrderItem
	TotalAmount decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
}

// NewOrder creates a pending order owned by the given customer
func NewOrder(customerID uuid.UUID, items []OrderItem, totalAmount decimal.Decimal) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order must have an owning customer")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be at least 1")
		}
	}

	return &Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
