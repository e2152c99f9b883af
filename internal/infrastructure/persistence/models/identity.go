package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/meatdelivery/backend/internal/domain/identity"
)

// AdminDocument is the document model for the Admin domain entity.
// The password hash is stored under "password" to stay compatible with
// existing documents in the admins collection.
type AdminDocument struct {
	ID        string    `bson:"id"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"created_at"`
}

// FromAdmin converts a domain Admin to its document model
func FromAdmin(a *identity.Admin) *AdminDocument {
	return &AdminDocument{
		ID:        a.ID.String(),
		Username:  a.Username,
		Password:  a.PasswordHash,
		CreatedAt: a.CreatedAt,
	}
}

// ToDomain converts the document model to a domain Admin entity
func (d *AdminDocument) ToDomain() (*identity.Admin, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &identity.Admin{
		ID:           id,
		Username:     d.Username,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// CustomerDocument is the document model for the Customer domain entity
type CustomerDocument struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Phone     string    `bson:"phone"`
	CreatedAt time.Time `bson:"created_at"`
}

// FromCustomer converts a domain Customer to its document model
func FromCustomer(c *identity.Customer) *CustomerDocument {
	return &CustomerDocument{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Password:  c.PasswordHash,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// ToDomain converts the document model to a domain Customer entity
func (d *CustomerDocument) ToDomain() (*identity.Customer, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &identity.Customer{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Phone:        d.Phone,
		CreatedAt:    d.CreatedAt,
	}, nil
}
