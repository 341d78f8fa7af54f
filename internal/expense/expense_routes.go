package expense

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	{
		expenses.GET("/categories", handler.ListCategories)
		expenses.GET("/mine", handler.GetMine)
		expenses.POST("", handler.Submit)
		expenses.GET("", middleware.RBACAuthorize(rbacService, "expenses", "read"), handler.GetAll)
		expenses.GET("/:id", middleware.RBACAuthorize(rbacService, "expenses", "read"), handler.GetByID)
	}
}
