package middleware

import (
	"net/http"
	"strings"

	"salescrm/internal/domain"
	jwtsvc "salescrm/internal/pkg/jwt"
	"salescrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth authenticates the request from the Authorization header and
// stores the principal fields in the gin context. Every endpoint below
// it requires an authenticated principal.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("admin", claims.Admin)

		c.Next()
	}
}

// CurrentPrincipal rebuilds the authenticated principal from the
// context values set by JWTAuth.
func CurrentPrincipal(c *gin.Context) domain.Principal {
	return domain.Principal{
		ID:    c.GetInt64("user_id"),
		Role:  domain.Role(c.GetString("role")),
		Admin: c.GetBool("admin"),
	}
}
