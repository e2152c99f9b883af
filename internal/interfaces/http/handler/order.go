package handler

import (
	"github.com/gin-gonic/gin"

	orderingapp "github.com/meatdelivery/backend/internal/application/ordering"
	"github.com/meatdelivery/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService    *orderingapp.OrderService
	requireAuth     gin.HandlerFunc
	requireAdmin    gin.HandlerFunc
	requireCustomer gin.HandlerFunc
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *orderingapp.OrderService, requireAuth, requireAdmin, requireCustomer gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		requireAuth:     requireAuth,
		requireAdmin:    requireAdmin,
		requireCustomer: requireCustomer,
	}
}

// RegisterRoutes registers the customer order routes and the admin listing
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customer", h.requireAuth, h.requireCustomer)
	customer.POST("/orders", h.Place)
	customer.GET("/orders", h.ListMine)

	admin := rg.Group("/admin", h.requireAuth, h.requireAdmin)
	admin.GET("/orders", h.ListAll)
}

// Place creates a pending order owned by the authenticated customer
func (h *OrderHandler) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorDetail(err))
		return
	}

	customerID, err := subjectID(c)
	if err != nil {
		h.InternalError(c, "Failed to resolve authenticated customer")
		return
	}

	orderID, err := h.orderService.Place(c.Request.Context(), customerID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PlaceOrderResponse{
		Message: "Order placed successfully",
		OrderID: orderID.String(),
	})
}

// ListMine returns only the caller's orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	customerID, err := subjectID(c)
	if err != nil {
		h.InternalError(c, "Failed to resolve authenticated customer")
		return
	}

	orders, err := h.orderService.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := OrderListResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, newOrderResponse(o))
	}
	h.Success(c, resp)
}

// ListAll returns every order with the owning customer's snapshot attached
func (h *OrderHandler) ListAll(c *gin.Context) {
	views, err := h.orderService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := AdminOrderListResponse{Orders: make([]AdminOrderResponse, 0, len(views))}
	for _, view := range views {
		item := AdminOrderResponse{OrderResponse: newOrderResponse(view.Order)}
		if view.Customer != nil {
			item.Customer = &OrderCustomerResponse{
				Name:  view.Customer.Name,
				Email: view.Customer.Email,
				Phone: view.Customer.Phone,
			}
		}
		resp.Orders = append(resp.Orders, item)
	}
	h.Success(c, resp)
}
