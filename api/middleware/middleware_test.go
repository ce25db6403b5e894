package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVerifier 只接受 "good-token"
func fakeVerifier(calls *int) SessionVerifier {
	return func(ctx context.Context, token string) (*AuthContext, error) {
		*calls++
		if token != "good-token" {
			return nil, errors.New("token expired")
		}
		return &AuthContext{UserID: "u_123", SessionID: "sess_1"}, nil
	}
}

// newGuardedRouter 组装 ClerkAuth -> RequireAuth -> handler
func newGuardedRouter(verify SessionVerifier, handlerRan *bool) *gin.Engine {
	r := gin.New()
	r.GET("/protected",
		ClerkAuth(verify, zap.NewNop().Sugar()),
		RequireAuth(),
		func(c *gin.Context) {
			*handlerRan = true
			auth, _ := GetAuth(c)
			c.JSON(http.StatusOK, gin.H{"userId": auth.UserID, "sessionId": auth.SessionID})
		})
	return r
}

func TestRequireAuth_NoAuthContext(t *testing.T) {
	calls := 0
	handlerRan := false
	r := newGuardedRouter(fakeVerifier(&calls), &handlerRan)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized access"}`, w.Body.String())
	// 核心断言：401 之后绝不继续执行后续 handler
	assert.False(t, handlerRan)
	assert.Equal(t, 0, calls, "没有 Token 时不应调用验证器")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	calls := 0
	handlerRan := false
	r := newGuardedRouter(fakeVerifier(&calls), &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
	assert.Equal(t, 1, calls)
}

func TestRequireAuth_BearerToken(t *testing.T) {
	calls := 0
	handlerRan := false
	r := newGuardedRouter(fakeVerifier(&calls), &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
	assert.JSONEq(t, `{"userId":"u_123","sessionId":"sess_1"}`, w.Body.String())
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	calls := 0
	handlerRan := false
	r := newGuardedRouter(fakeVerifier(&calls), &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

func TestRequireAuth_EmptyUserID(t *testing.T) {
	r := gin.New()
	handlerRan := false
	r.GET("/protected",
		func(c *gin.Context) { SetAuth(c, &AuthContext{SessionID: "sess_1"}) },
		RequireAuth(),
		func(c *gin.Context) { handlerRan = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestClerkAuth_NeverAborts(t *testing.T) {
	// 身份中间件本身不拦截，未认证的请求照样到达 handler
	calls := 0
	r := gin.New()
	r.GET("/open", ClerkAuth(fakeVerifier(&calls), zap.NewNop().Sugar()), func(c *gin.Context) {
		_, ok := GetAuth(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestGetAuth_WrongType(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextKeyAuth, "not-an-auth-context")

	auth, ok := GetAuth(c)
	assert.False(t, ok)
	assert.Nil(t, auth)
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop().Sugar()))
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get(ContextKeyRequestID)
		c.JSON(http.StatusOK, gin.H{"requestId": id})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	reqID := w.Header().Get(HeaderRequestID)
	assert.Len(t, reqID, 36)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, reqID, body["requestId"])
}
