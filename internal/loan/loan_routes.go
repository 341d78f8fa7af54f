package loan

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	loans := r.Group("/loans")
	loans.Use(middleware.AuthMiddleware())
	{
		loans.GET("/types", handler.ListTypes)
		loans.GET("/mine", handler.GetMine)
		loans.POST("", handler.Apply)
		loans.GET("", middleware.RBACAuthorize(rbacService, "loans", "read"), handler.GetAll)
		loans.GET("/:id", middleware.RBACAuthorize(rbacService, "loans", "read"), handler.GetByID)
	}
}
