package leave

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("/types", handler.ListTypes)
		leaves.GET("/mine", handler.GetMine)
		leaves.GET("/balance", handler.Balance)
		leaves.POST("", handler.Submit)
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leaves", "read"), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leaves", "read"), handler.GetByID)
	}
}
