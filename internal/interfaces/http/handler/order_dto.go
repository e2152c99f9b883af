package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderingapp "github.com/meatdelivery/backend/internal/application/ordering"
	"github.com/meatdelivery/backend/internal/domain/ordering"
)

// OrderItemRequest is a single line of an order placement request
type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

// PlaceOrderRequest is the request body for placing an order.
// The caller never supplies a customer id; ownership comes from the token.
type PlaceOrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64            `json:"total_amount"`
}

// toInput converts the request to a service-level placement input
func (r PlaceOrderRequest) toInput() orderingapp.PlaceOrderInput {
	items := make([]orderingapp.OrderItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = orderingapp.OrderItemInput{
			ProductID: uuid.MustParse(item.ProductID), // validated by binding
			Quantity:  item.Quantity,
			Price:     decimal.NewFromFloat(item.Price),
		}
	}
	return orderingapp.PlaceOrderInput{
		Items:       items,
		TotalAmount: decimal.NewFromFloat(r.TotalAmount),
	}
}

// OrderItemResponse is the wire representation of an order line
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderResponse is the wire representation of an order
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// newOrderResponse converts a domain order to its wire representation
func newOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price.InexactFloat64(),
		}
	}
	return OrderResponse{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID.String(),
		Items:       items,
		TotalAmount: o.TotalAmount.InexactFloat64(),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

// OrderListResponse wraps a customer's order listing
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// OrderCustomerResponse is the denormalized owner snapshot on admin listings
type OrderCustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AdminOrderResponse is an order with its owner snapshot; Customer is null
// when the customer record is missing.
type AdminOrderResponse struct {
	OrderResponse
	Customer *OrderCustomerResponse `json:"customer"`
}

// AdminOrderListResponse wraps the admin order listing
type AdminOrderListResponse struct {
	Orders []AdminOrderResponse `json:"orders"`
}

// PlaceOrderResponse is the response body for a successful placement
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}
