package attendance

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/check-in", handler.CheckIn)
		attendances.POST("/check-out", handler.CheckOut)
		attendances.GET("/mine", handler.GetMine)
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetByDate)
	}
}
