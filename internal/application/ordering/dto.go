package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meatdelivery/backend/internal/domain/ordering"
)

// OrderItemInput is a single line of a placement request
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// PlaceOrderInput contains input for placing an order.
// Item prices and the total are recorded as submitted by the client.
type PlaceOrderInput struct {
	Items       []OrderItemInput
	TotalAmount decimal.Decimal
}

// CustomerSnapshot is the denormalized owner info attached to admin listings
type CustomerSnapshot struct {
	Name  string
	Email string
	Phone string
}

// AdminOrderView is an order joined with its owning customer's snapshot.
// Customer is nil when the customer record is missing.
type AdminOrderView struct {
	Order    *ordering.Order
	Customer *CustomerSnapshot
}
