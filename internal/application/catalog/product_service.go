package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/meatdelivery/backend/internal/domain/catalog"
)

// ProductService handles catalog CRUD operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns all products. The same projection serves the public storefront
// listing and the admin listing; only the route gating differs.
func (s *ProductService) List(ctx context.Context) ([]*catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Create creates a product and returns its assigned ID
func (s *ProductService) Create(ctx context.Context, input catalog.ProductInput) (uuid.UUID, error) {
	product, err := catalog.NewProduct(input)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return uuid.Nil, err
	}
	return product.ID, nil
}

// Update performs a full replace of a product's mutable fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input catalog.ProductInput) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := product.Replace(input); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, product)
}

// Delete deletes a product by ID
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
