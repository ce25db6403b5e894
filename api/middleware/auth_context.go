package middleware

import "github.com/gin-gonic/gin"

// AuthContext 由身份中间件写入的请求级认证信息
type AuthContext struct {
	UserID    string
	SessionID string
}

// SetAuth 写入认证信息
func SetAuth(c *gin.Context, auth *AuthContext) {
	c.Set(ContextKeyAuth, auth)
}

// GetAuth 读取认证信息，未认证时 ok 为 false
func GetAuth(c *gin.Context) (*AuthContext, bool) {
	v, exists := c.Get(ContextKeyAuth)
	if !exists {
		return nil, false
	}
	auth, ok := v.(*AuthContext)
	if !ok || auth == nil {
		return nil, false
	}
	return auth, true
}
