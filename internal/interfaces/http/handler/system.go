package handler

import (
	"github.com/gin-gonic/gin"
)

// HealthResponse is the health probe body
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SystemHandler serves the health probe
type SystemHandler struct {
	BaseHandler
}

// NewSystemHandler creates a new system handler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// RegisterRoutes registers the health route
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:  "healthy",
		Message: "Meat Delivery API is running",
	})
}
