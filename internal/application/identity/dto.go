package identity

import (
	"github.com/meatdelivery/backend/internal/infrastructure/auth"
)

// RegisterCustomerInput contains input for customer registration
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginCustomerInput contains input for customer login
type LoginCustomerInput struct {
	Email    string
	Password string
}

// LoginAdminInput contains input for admin login
type LoginAdminInput struct {
	Username string
	Password string
}

// AuthResult is the outcome of a successful authentication
type AuthResult struct {
	AccessToken  string
	TokenType    string // always "bearer"
	Role         auth.Role
	CustomerName string // set only for customer login
}
