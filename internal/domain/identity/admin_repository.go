package identity

import (
	"context"
)

// AdminRepository defines the interface for admin persistence
type AdminRepository interface {
	// Create creates a new admin
	Create(ctx context.Context, admin *Admin) error

	// FindByUsername finds an admin by username
	FindByUsername(ctx context.Context, username string) (*Admin, error)

	// ExistsByUsername checks if a username already exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
