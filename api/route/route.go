package route

import (
	"net/http"

	"user-sync-server/api/controller"
	"user-sync-server/api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	WebhookController   *controller.WebhookController
	ProtectedController *controller.ProtectedController
	SessionVerifier     middleware.SessionVerifier
	Logger              *zap.SugaredLogger
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running successfully!")
	})

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "user-sync-server",
		})
	})

	// Clerk Webhook（使用 Svix 签名验证，不使用 JWT）
	// 两个路径历史上都被配置过，保持兼容
	router.POST("/clerk-webhook", deps.WebhookController.HandleClerkWebhook)
	router.POST("/clerk/webhook", deps.WebhookController.HandleClerkWebhook)

	// --- 受保护路由（ClerkAuth 填充身份，RequireAuth 负责拦截）---
	router.GET("/protected-route",
		middleware.ClerkAuth(deps.SessionVerifier, deps.Logger),
		middleware.RequireAuth(),
		deps.ProtectedController.GetProtected,
	)
}
