package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meatdelivery/backend/internal/domain/catalog"
)

// ProductDocument is the document model for the Product domain entity.
// Price is stored as a plain number, matching the documents the storefront
// has always written.
type ProductDocument struct {
	ID          string     `bson:"id"`
	Name        string     `bson:"name"`
	Description string     `bson:"description"`
	Price       float64    `bson:"price"`
	Category    string     `bson:"category"`
	Image       string     `bson:"image"`
	Stock       int        `bson:"stock"`
	Weight      string     `bson:"weight,omitempty"`
	Origin      string     `bson:"origin,omitempty"`
	Storage     string     `bson:"storage,omitempty"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty"`
}

// FromProduct converts a domain Product to its document model
func FromProduct(p *catalog.Product) *ProductDocument {
	return &ProductDocument{
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

// ToDomain converts the document model to a domain Product entity
func (d *ProductDocument) ToDomain() (*catalog.Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &catalog.Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Category:    d.Category,
		Image:       d.Image,
		Stock:       d.Stock,
		Weight:      d.Weight,
		Origin:      d.Origin,
		Storage:     d.Storage,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}
