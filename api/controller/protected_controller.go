package controller

import (
	"net/http"

	"user-sync-server/api/middleware"

	"github.com/gin-gonic/gin"
)

// ProtectedController 受保护路由
type ProtectedController struct{}

// NewProtectedController 创建 ProtectedController 实例
func NewProtectedController() *ProtectedController {
	return &ProtectedController{}
}

// GetProtected 需要登录才能访问
// GET /protected-route
// 前置中间件：ClerkAuth -> RequireAuth
func (pc *ProtectedController) GetProtected(c *gin.Context) {
	auth, ok := middleware.GetAuth(c)
	if !ok || auth.UserID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: "You have access!",
		UserID:  auth.UserID,
	})
}
