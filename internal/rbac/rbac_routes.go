package rbac

import (
	"github.com/headhr-blip/worknest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", middleware.RBACAuthorize(service, "roles", "read"), handler.ListRoles)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:userId/roles", middleware.RBACAuthorize(service, "roles", "read"), handler.ListForUser)
		users.POST("/:userId/roles", middleware.RBACAuthorize(service, "roles", "write"), handler.Assign)
		users.DELETE("/:userId/roles/:role", middleware.RBACAuthorize(service, "roles", "write"), handler.Revoke)
	}
}
