package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth 认证守卫
// 没有认证信息或缺少 UserID 时返回 401 并终止调用链
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := GetAuth(c)
		if !ok || auth.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		c.Next()
	}
}
