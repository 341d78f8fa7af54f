package compensation

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	comp := r.Group("/compensation")
	comp.Use(middleware.AuthMiddleware())
	{
		comp.GET("/:userId", middleware.RBACAuthorize(rbacService, "compensation", "read"), handler.Get)
		comp.GET("/:userId/history", middleware.RBACAuthorize(rbacService, "compensation", "read"), handler.History)
		comp.PUT("/:userId", middleware.RBACAuthorize(rbacService, "compensation", "write"), handler.Upsert)
	}
}
