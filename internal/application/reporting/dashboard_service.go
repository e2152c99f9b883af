package reporting

import (
	"context"

	"github.com/meatdelivery/backend/internal/domain/catalog"
	"github.com/meatdelivery/backend/internal/domain/identity"
	"github.com/meatdelivery/backend/internal/domain/ordering"
)

// DashboardCounts holds the entity totals shown on the admin dashboard
type DashboardCounts struct {
	Products  int64
	Orders    int64
	Customers int64
}

// DashboardService aggregates entity counts for the admin dashboard
type DashboardService struct {
	productRepo  catalog.ProductRepository
	orderRepo    ordering.OrderRepository
	customerRepo identity.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo catalog.ProductRepository,
	orderRepo ordering.OrderRepository,
	customerRepo identity.CustomerRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// Counts returns the current product, order and customer totals
func (s *DashboardService) Counts(ctx context.Context) (DashboardCounts, error) {
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return DashboardCounts{}, err
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return DashboardCounts{}, err
	}
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return DashboardCounts{}, err
	}

	return DashboardCounts{
		Products:  products,
		Orders:    orders,
		Customers: customers,
	}, nil
}
