package document

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	docs := r.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.GET("/users/:userId", middleware.RBACAuthorize(rbacService, "documents", "read"), handler.ListForUser)
		docs.POST("/users/:userId", middleware.RBACAuthorize(rbacService, "documents", "write"), handler.Upload)
		docs.DELETE("/:id", middleware.RBACAuthorize(rbacService, "documents", "write"), handler.Delete)
	}
}
