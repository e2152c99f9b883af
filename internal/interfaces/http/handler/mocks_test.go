package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogapp "github.com/meatdelivery/backend/internal/application/catalog"
	identityapp "github.com/meatdelivery/backend/internal/application/identity"
	orderingapp "github.com/meatdelivery/backend/internal/application/ordering"
	"github.com/meatdelivery/backend/internal/application/reporting"
	domaincatalog "github.com/meatdelivery/backend/internal/domain/catalog"
	domainidentity "github.com/meatdelivery/backend/internal/domain/identity"
	domainordering "github.com/meatdelivery/backend/internal/domain/ordering"
	"github.com/meatdelivery/backend/internal/infrastructure/auth"
	"github.com/meatdelivery/backend/internal/infrastructure/config"
	"github.com/meatdelivery/backend/internal/interfaces/http/middleware"
	"github.com/meatdelivery/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// MockAdminRepository implements identity.AdminRepository for testing
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *domainidentity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*domainidentity.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.Admin), args.Error(1)
}

func (m *MockAdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockCustomerRepository implements identity.CustomerRepository for testing
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domainidentity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*domainidentity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domaincatalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domaincatalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domaincatalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincatalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*domaincatalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domaincatalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository implements ordering.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domainordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*domainordering.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*domainordering.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// testEnv wires mocked repositories behind real services and a full route
// table, so handler tests exercise the same stack requests hit in production.
type testEnv struct {
	engine       *gin.Engine
	jwtService   *auth.JWTService
	adminRepo    *MockAdminRepository
	customerRepo *MockCustomerRepository
	productRepo  *MockProductRepository
	orderRepo    *MockOrderRepository
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	env := &testEnv{
		adminRepo:    new(MockAdminRepository),
		customerRepo: new(MockCustomerRepository),
		productRepo:  new(MockProductRepository),
		orderRepo:    new(MockOrderRepository),
	}

	env.jwtService = auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: time.Hour,
		Issuer:     "meat-delivery-backend",
	})

	log := zap.NewNop()
	authService := identityapp.NewAuthService(env.adminRepo, env.customerRepo, env.jwtService, log)
	productService := catalogapp.NewProductService(env.productRepo)
	orderService := orderingapp.NewOrderService(env.orderRepo, env.customerRepo, log)
	dashboardService := reporting.NewDashboardService(env.productRepo, env.orderRepo, env.customerRepo)

	requireAuth := middleware.JWTAuth(env.jwtService)
	requireAdmin := middleware.RequireRole(auth.RoleAdmin)
	requireCustomer := middleware.RequireRole(auth.RoleCustomer)

	env.engine = gin.New()
	r := router.NewRouter(env.engine)
	r.Register(NewSystemHandler()).
		Register(NewAuthHandler(authService)).
		Register(NewProductHandler(productService, requireAuth, requireAdmin)).
		Register(NewOrderHandler(orderService, requireAuth, requireAdmin, requireCustomer)).
		Register(NewDashboardHandler(dashboardService, requireAuth, requireAdmin))
	r.Setup()

	return env
}

func (e *testEnv) adminToken() string {
	token, err := e.jwtService.GenerateToken(uuid.New(), auth.RoleAdmin)
	if err != nil {
		panic(err)
	}
	return token
}

func (e *testEnv) customerToken(customerID uuid.UUID) string {
	token, err := e.jwtService.GenerateToken(customerID, auth.RoleCustomer)
	if err != nil {
		panic(err)
	}
	return token
}
