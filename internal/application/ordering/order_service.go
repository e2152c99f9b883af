package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meatdelivery/backend/internal/domain/identity"
	"github.com/meatdelivery/backend/internal/domain/ordering"
	"github.com/meatdelivery/backend/internal/domain/shared"
)

// OrderService handles order placement and retrieval
type OrderService struct {
	orderRepo    ordering.OrderRepository
	customerRepo identity.CustomerRepository
	logger       *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo ordering.OrderRepository,
	customerRepo identity.CustomerRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Place creates a pending order owned by the authenticated customer.
// The customer ID always comes from the validated token, never from the body.
func (s *OrderService) Place(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (uuid.UUID, error) {
	items := make([]ordering.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = ordering.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	order, err := ordering.NewOrder(customerID, items, input.TotalAmount)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return uuid.Nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.Int("items", len(order.Items)))

	return order.ID, nil
}

// ListForCustomer returns only the orders owned by the caller
func (s *OrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]*ordering.Order, error) {
	return s.orderRepo.FindByCustomerID(ctx, customerID)
}

// ListAll returns every order, each joined with a snapshot of the owning
// customer. The snapshot is nil when the customer record is missing.
func (s *OrderService) ListAll(ctx context.Context) ([]AdminOrderView, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AdminOrderView, 0, len(orders))
	for _, order := range orders {
		view := AdminOrderView{Order: order}

		customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
		switch {
		case err == nil:
			view.Customer = &CustomerSnapshot{
				Name:  customer.Name,
				Email: customer.Email,
				Phone: customer.Phone,
			}
		case errors.Is(err, shared.ErrNotFound):
			// Orphaned order; listed with a null customer
		default:
			return nil, err
		}

		views = append(views, view)
	}
	return views, nil
}
