package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meatdelivery/backend/internal/domain/ordering"
)

// OrderItemDocument is the embedded document model for an order line
type OrderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
}

// OrderDocument is the document model for the Order domain entity
type OrderDocument struct {
	ID          string              `bson:"id"`
	CustomerID  string              `bson:"customer_id"`
	Items       []OrderItemDocument `bson:"items"`
	TotalAmount float64             `bson:"total_amount"`
	Status      string              `bson:"status"`
	CreatedAt   time.Time           `bson:"created_at"`
}

// FromOrder converts a domain Order to its document model
func FromOrder(o *ordering.Order) *OrderDocument {
	items := make([]OrderItemDocument, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemDocument{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price.InexactFloat64(),
		}
	}
	return &OrderDocument{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID.String(),
		Items:       items,
		TotalAmount: o.TotalAmount.InexactFloat64(),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

// ToDomain converts the document model to a domain Order entity
func (d *OrderDocument) ToDomain() (*ordering.Order, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := uuid.Parse(d.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]ordering.OrderItem, len(d.Items))
	for i, item := range d.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, err
		}
		items[i] = ordering.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     decimal.NewFromFloat(item.Price),
		}
	}

	return &ordering.Order{
		ID:          id,
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: decimal.NewFromFloat(d.TotalAmount),
		Status:      ordering.OrderStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}, nil
}
