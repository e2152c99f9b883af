package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meatdelivery/backend/internal/domain/catalog"
)

// ProductRequest carries the full product payload; update is a full replace,
// so create and update share the same body.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image" binding:"required"`
	Stock       int     `json:"stock"`
	Weight      string  `json:"weight"`
	Origin      string  `json:"origin"`
	Storage     string  `json:"storage"`
}

// toInput converts the request to a domain product input
func (r ProductRequest) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price),
		Category:    r.Category,
		Image:       r.Image,
		Stock:       r.Stock,
		Weight:      r.Weight,
		Origin:      r.Origin,
		Storage:     r.Storage,
	}
}

// ProductResponse is the wire representation of a product
type ProductResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Stock       int        `json:"stock"`
	Weight      string     `json:"weight,omitempty"`
	Origin      string     `json:"origin,omitempty"`
	Storage     string     `json:"storage,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// newProductResponse converts a domain product to its wire representation
func newProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Image:       p.Image,
		Stock:       p.Stock,
		Weight:      p.Weight,
		Origin:      p.Origin,
		Storage:     p.Storage,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductListResponse wraps a product listing
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// CreateProductResponse is the response body for product creation
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
