package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/meatdelivery/backend/internal/application/reporting"
)

// DashboardResponse carries the admin dashboard counters
type DashboardResponse struct {
	ProductsCount  int64 `json:"products_count"`
	OrdersCount    int64 `json:"orders_count"`
	CustomersCount int64 `json:"customers_count"`
}

// DashboardHandler handles admin dashboard requests
type DashboardHandler struct {
	BaseHandler
	dashboardService *reporting.DashboardService
	requireAuth      gin.HandlerFunc
	requireAdmin     gin.HandlerFunc
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *reporting.DashboardService, requireAuth, requireAdmin gin.HandlerFunc) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		requireAuth:      requireAuth,
		requireAdmin:     requireAdmin,
	}
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", h.requireAuth, h.requireAdmin)
	admin.GET("/dashboard", h.Counts)
}

// Counts returns the entity totals shown on the admin dashboard
func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, err := h.dashboardService.Counts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DashboardResponse{
		ProductsCount:  counts.Products,
		OrdersCount:    counts.Orders,
		CustomersCount: counts.Customers,
	})
}
