package middleware

// ContextKey 定义 Context 中使用的常量 key
// 避免在代码中硬编码字符串，防止拼写错误导致的 bug

const (
	// ContextKeyAuth 存储 *AuthContext 的 Context key
	ContextKeyAuth = "auth"

	// ContextKeyRequestID 存储请求 ID 的 Context key
	ContextKeyRequestID = "requestID"

	// HeaderRequestID 响应头中回传的请求 ID
	HeaderRequestID = "X-Request-ID"

	// SessionCookie Clerk 前端 SDK 写入的会话 cookie
	SessionCookie = "__session"
)
