package middleware

import (
	"context"
	"net/http"

	"github.com/headhr-blip/worknest/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so this package never has to import the
// rbac package (whose routes import middleware back).
type RBACService interface {
	Enforce(ctx context.Context, userID, resource, action string) (bool, error)
}

// RBACAuthorize guards a route with a (resource, action) permission check
// against the caller's role set.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(c.Request.Context(), userID, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "insufficient permissions", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
