package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meatdelivery/backend/internal/domain/shared"
)

// Product represents a product in the storefront catalog
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string // data URI or URL
	Stock       int
	Weight      string
	Origin      string
	Storage     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ProductInput carries the full set of mutable product fields.
// Updates are full replaces, so the same input serves create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	Stock       int
	Weight      string
	Origin      string
	Storage     string
}

// NewProduct creates a new product with a fresh ID and creation timestamp
func NewProduct(input ProductInput) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return &Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Stock:       input.Stock,
		Weight:      input.Weight,
		Origin:      input.Origin,
		Storage:     input.Storage,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Replace overwrites all mutable fields and stamps the update time
func (p *Product) Replace(input ProductInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	now := time.Now().UTC()
	p.Name = strings.TrimSpace(input.Name)
	p.Description = input.Description
	p.Price = input.Price
	p.Category = input.Category
	p.Image = input.Image
	p.Stock = input.Stock
	p.Weight = input.Weight
	p.Origin = input.Origin
	p.Storage = input.Storage
	p.UpdatedAt = &now

	return nil
}

// validateInput validates the mutable product fields
func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if input.Price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if input.Stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	return nil
}
