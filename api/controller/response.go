package controller

// --- 响应结构定义 ---

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse 消息响应结构
type MessageResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}
