package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/meatdelivery/backend/internal/domain/identity"
	"github.com/meatdelivery/backend/internal/domain/shared"
	"github.com/meatdelivery/backend/internal/infrastructure/auth"
)

const tokenTypeBearer = "bearer"

// AuthService handles admin and customer authentication
type AuthService struct {
	adminRepo    identity.AdminRepository
	customerRepo identity.CustomerRepository
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	adminRepo identity.AdminRepository,
	customerRepo identity.CustomerRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// RegisterCustomer registers a new customer and returns a customer-role token
func (s *AuthService) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// The unique index on email is the real guard; this read keeps the
	// friendly error for the common case.
	exists, err := s.customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register customer")
	}
	if exists {
		return nil, shared.ErrDuplicateEmail
	}

	customer, err := identity.NewCustomer(input.Name, email, input.Password, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, shared.ErrDuplicateEmail) {
			return nil, shared.ErrDuplicateEmail
		}
		s.logger.Error("Failed to create customer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register customer")
	}

	token, err := s.jwtService.GenerateToken(customer.ID, auth.RoleCustomer)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("Customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email))

	return &AuthResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		Role:        auth.RoleCustomer,
	}, nil
}

// LoginCustomer authenticates a customer by email and password.
// Unknown email and wrong password produce the same error to avoid
// user enumeration.
func (s *AuthService) LoginCustomer(ctx context.Context, input LoginCustomerInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("email", email))
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up customer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to log in")
	}

	if !customer.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", email))
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(customer.ID, auth.RoleCustomer)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("Customer logged in", zap.String("customer_id", customer.ID.String()))

	return &AuthResult{
		AccessToken:  token,
		TokenType:    tokenTypeBearer,
		Role:         auth.RoleCustomer,
		CustomerName: customer.Name,
	}, nil
}

// LoginAdmin authenticates an admin by username and password
func (s *AuthService) LoginAdmin(ctx context.Context, input LoginAdminInput) (*AuthResult, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown admin", zap.String("username", input.Username))
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up admin", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to log in")
	}

	if !admin.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid admin password attempt", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, auth.RoleAdmin)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))

	return &AuthResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		Role:        auth.RoleAdmin,
	}, nil
}

// EnsureSeedAdmin creates the seed admin if no admin with the configured
// username exists. It runs once at startup, before the listener starts, and
// is safe to re-run because it checks existence first.
func (s *AuthService) EnsureSeedAdmin(ctx context.Context, username, password string) error {
	exists, err := s.adminRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewAdmin(username, password)
	if err != nil {
		return err
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Seed admin created",
		zap.String("admin_id", admin.ID.String()),
		zap.String("username", username))

	return nil
}
