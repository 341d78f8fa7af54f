package approval

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	approvals := r.Group("/approvals")
	approvals.Use(middleware.AuthMiddleware())
	{
		approvals.GET("/:kind/pending", middleware.RBACAuthorize(rbacService, "approvals", "read"), handler.ListPending)
		approvals.POST("/:kind/:id/resolve", middleware.RBACAuthorize(rbacService, "approvals", "resolve"), handler.Resolve)
	}
}
