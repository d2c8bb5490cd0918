package middleware

import (
	"net/http"

	"salescrm/internal/domain"
	"salescrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on the pure authorization policy. It runs
// after JWTAuth and before any data access.
func Authorize(entity domain.Entity, action domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if !domain.Allow(p.Role, c.Request.Method, entity, action) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts user-management endpoints to administrators.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("admin") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
