package branch

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	branches := r.Group("/branches")
	branches.Use(middleware.AuthMiddleware())
	{
		branches.GET("", middleware.RBACAuthorize(rbacService, "branches", "read"), handler.GetAll)
		branches.GET("/:id", middleware.RBACAuthorize(rbacService, "branches", "read"), handler.GetByID)
		branches.POST("", middleware.RBACAuthorize(rbacService, "branches", "write"), handler.Create)
		branches.PATCH("/:id", middleware.RBACAuthorize(rbacService, "branches", "write"), handler.Update)
		branches.DELETE("/:id", middleware.RBACAuthorize(rbacService, "branches", "write"), handler.Delete)
	}
}
