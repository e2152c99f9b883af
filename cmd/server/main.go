package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/meatdelivery/backend/internal/application/catalog"
	identityapp "github.com/meatdelivery/backend/internal/application/identity"
	orderingapp "github.com/meatdelivery/backend/internal/application/ordering"
	"github.com/meatdelivery/backend/internal/application/reporting"
	"github.com/meatdelivery/backend/internal/infrastructure/auth"
	"github.com/meatdelivery/backend/internal/infrastructure/config"
	"github.com/meatdelivery/backend/internal/infrastructure/logger"
	"github.com/meatdelivery/backend/internal/infrastructure/persistence"
	"github.com/meatdelivery/backend/internal/interfaces/http/handler"
	"github.com/meatdelivery/backend/internal/interfaces/http/middleware"
	"github.com/meatdelivery/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Meat Delivery Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to the document store; NewDatabase applies the connect timeout
	db, err := persistence.NewDatabase(context.Background(), &cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		if err := db.Close(closeCtx); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("database", cfg.Mongo.Database))

	// Initialize repositories
	adminRepo := persistence.NewMongoAdminRepository(db.DB)
	customerRepo := persistence.NewMongoCustomerRepository(db.DB)
	productRepo := persistence.NewMongoProductRepository(db.DB)
	orderRepo := persistence.NewMongoOrderRepository(db.DB)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := customerRepo.EnsureIndexes(indexCtx); err != nil {
		cancelIndex()
		log.Fatal("Failed to create indexes", zap.Error(err))
	}
	cancelIndex()

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(adminRepo, customerRepo, jwtService, log)
	productService := catalogapp.NewProductService(productRepo)
	orderService := orderingapp.NewOrderService(orderRepo, customerRepo, log)
	dashboardService := reporting.NewDashboardService(productRepo, orderRepo, customerRepo)

	// Bootstrap the seed admin before accepting requests
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureSeedAdmin(seedCtx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		cancelSeed()
		log.Fatal("Failed to bootstrap seed admin", zap.Error(err))
	}
	cancelSeed()

	// Setup Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
		logger.GinMiddleware(log),
	)

	// Auth middleware shared by the protected route groups
	requireAuth := middleware.JWTAuth(jwtService)
	requireAdmin := middleware.RequireRole(auth.RoleAdmin)
	requireCustomer := middleware.RequireRole(auth.RoleCustomer)

	// Register routes
	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler()).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewProductHandler(productService, requireAuth, requireAdmin)).
		Register(handler.NewOrderHandler(orderService, requireAuth, requireAdmin, requireCustomer)).
		Register(handler.NewDashboardHandler(dashboardService, requireAuth, requireAdmin))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
