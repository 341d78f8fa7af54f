package payroll

import (
	"github.com/headhr-blip/worknest/internal/middleware"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the payroll endpoints. The run endpoint carries the
// idempotency middleware so a retried POST replays the first response instead
// of starting a second batch.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, redisClient *redis.Client) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("/mine", handler.GetMine)
		payrolls.POST("/run",
			middleware.RBACAuthorize(rbacService, "payrolls", "run"),
			middleware.Idempotency(redisClient),
			handler.Run,
		)
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payrolls", "read"), handler.GetByPeriod)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payrolls", "read"), handler.GetByID)
		payrolls.POST("/:id/pay", middleware.RBACAuthorize(rbacService, "payrolls", "pay"), handler.MarkPaid)
	}
}
