package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meatdelivery/backend/internal/infrastructure/auth"
)

// RequireRole rejects requests whose token does not carry the given role.
// It must run after JWTAuth.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != role {
			detail := "Customer access required"
			if role == auth.RoleAdmin {
				detail = "Admin access required"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": detail})
			return
		}
		c.Next()
	}
}
