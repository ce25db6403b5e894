package middleware

import (
	"context"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionVerifier 校验会话 Token 并返回认证信息
type SessionVerifier func(ctx context.Context, token string) (*AuthContext, error)

// ClerkSessionVerifier 使用 Clerk SDK 验证会话 Token
// Clerk SDK 会自动拉取公钥并验证签名、过期时间
func ClerkSessionVerifier() SessionVerifier {
	return func(ctx context.Context, token string) (*AuthContext, error) {
		claims, err := jwt.Verify(ctx, &jwt.VerifyParams{
			Token: token,
		})
		if err != nil {
			return nil, err
		}
		return &AuthContext{
			UserID:    claims.Subject,
			SessionID: claims.SessionID,
		}, nil
	}
}

// ClerkAuth 身份中间件：只负责填充认证信息，从不拦截请求
// 是否放行由后续的 RequireAuth 决定
func ClerkAuth(verify SessionVerifier, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		auth, err := verify(c.Request.Context(), token)
		if err != nil {
			log.Debugw("[Auth] 会话 Token 验证失败", "error", err)
			c.Next()
			return
		}

		SetAuth(c, auth)
		c.Next()
	}
}

// sessionToken 优先读取 Bearer Token，其次读取 __session cookie
func sessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
