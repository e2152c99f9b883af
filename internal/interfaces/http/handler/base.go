package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/meatdelivery/backend/internal/domain/shared"
	"github.com/meatdelivery/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// statusForCode maps domain error codes to HTTP status codes
func statusForCode(code string) int {
	switch code {
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "DUPLICATE_EMAIL":
		return http.StatusBadRequest
	case "INTERNAL_ERROR":
		return http.StatusInternalServerError
	default:
		// Validation-style domain errors (INVALID_NAME, INVALID_PRICE, ...)
		return http.StatusBadRequest
	}
}

// Success sends a 200 response with the given payload
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response in the API's detail format
func (h *BaseHandler) Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, detail string) {
	h.Error(c, http.StatusBadRequest, detail)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, detail string) {
	h.Error(c, http.StatusNotFound, detail)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, detail string) {
	h.Error(c, http.StatusInternalServerError, detail)
}

// HandleError converts domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, statusForCode(domainErr.Code), domainErr.Message)
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}

// subjectID extracts the authenticated subject's ID from JWT claims
func subjectID(c *gin.Context) (uuid.UUID, error) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return uuid.Nil, errors.New("claims not found in context")
	}
	return claims.GetUserUUID()
}
