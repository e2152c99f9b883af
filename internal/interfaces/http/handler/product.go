package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/meatdelivery/backend/internal/application/catalog"
	"github.com/meatdelivery/backend/internal/domain/shared"
	"github.com/meatdelivery/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	requireAuth    gin.HandlerFunc
	requireAdmin   gin.HandlerFunc
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalogapp.ProductService, requireAuth, requireAdmin gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		requireAuth:    requireAuth,
		requireAdmin:   requireAdmin,
	}
}

// RegisterRoutes registers the public listing and the admin catalog routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)

	admin := rg.Group("/admin", h.requireAuth, h.requireAdmin)
	admin.GET("/products", h.List)
	admin.POST("/products", h.Create)
	admin.PUT("/products/:id", h.Update)
	admin.DELETE("/products/:id", h.Delete)
}

// List returns all products. The public storefront and the admin listing
// share the same projection.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, newProductResponse(p))
	}
	h.Success(c, resp)
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorDetail(err))
		return
	}

	id, err := h.productService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CreateProductResponse{
		Message:   "Product added successfully",
		ProductID: id.String(),
	})
}

// Update performs a full replace of a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorDetail(err))
		return
	}

	if err := h.productService.Update(c.Request.Context(), id, req.toInput()); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Product not found")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, MessageResponse{Message: "Product updated successfully"})
}

// Delete deletes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Product not found")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, MessageResponse{Message: "Product deleted successfully"})
}
