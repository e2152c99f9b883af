package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/meatdelivery/backend/internal/application/identity"
	"github.com/meatdelivery/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the unauthenticated auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.AdminLogin)
	rg.POST("/customer/register", h.CustomerRegister)
	rg.POST("/customer/login", h.CustomerLogin)
}

// AdminLogin authenticates an admin and returns an admin-role token
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorDetail(err))
		return
	}

	result, err := h.authService.LoginAdmin(c.Request.Context(), identityapp.LoginAdminInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, AdminLoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		Role:        string(result.Role),
	})
}

// CustomerRegister registers a new customer and returns a customer-role token
func (h *AuthHandler) CustomerRegister(c *gin.Context) {
	var req CustomerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorDetail(err))
		return
	}

	result, err := h.authService.RegisterCustomer(c.Request.Context(), identityapp.RegisterCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CustomerRegisterResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		Role:        string(result.Role),
		Message:     "Registration successful",
	})
}

// CustomerLogin authenticates a customer and returns a customer-role token
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorDetail(err))
		return
	}

	result, err := h.authService.LoginCustomer(c.Request.Context(), identityapp.LoginCustomerInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CustomerLoginResponse{
		AccessToken:  result.AccessToken,
		TokenType:    result.TokenType,
		Role:         string(result.Role),
		CustomerName: result.CustomerName,
	})
}
