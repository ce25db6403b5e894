package controller

import (
	"context"
	"errors"
	"net/http"

	"user-sync-server/domain/entity"
	"user-sync-server/internal/clerkhook"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserSyncer 用户同步业务接口（由 usecase.UserSyncUseCase 实现）
type UserSyncer interface {
	SyncCreatedUser(ctx context.Context, data *clerkhook.UserData) (*entity.User, bool, error)
}

// WebhookController 处理 Clerk Webhook 回调
type WebhookController struct {
	verifier *clerkhook.Verifier
	syncer   UserSyncer
	log      *zap.SugaredLogger
}

// NewWebhookController 构造函数
func NewWebhookController(verifier *clerkhook.Verifier, syncer UserSyncer, log *zap.SugaredLogger) *WebhookController {
	return &WebhookController{
		verifier: verifier,
		syncer:   syncer,
		log:      log,
	}
}

// UserResponse 用户同步结果
type UserResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

// InternalErrorResponse 服务端错误
// ⚠️ error 字段直接暴露底层错误信息，调用方只有 Clerk
type InternalErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// HandleClerkWebhook 处理 Clerk Webhook 回调
// POST /clerk-webhook, POST /clerk/webhook
// 只处理 user.created 事件，其余事件返回 400 且不产生任何副作用
func (wc *WebhookController) HandleClerkWebhook(c *gin.Context) {
	// 1. 读取原始请求体（签名基于原始字节，禁止先解析 JSON）
	body, err := c.GetRawData()
	if err != nil {
		wc.internalError(c, err)
		return
	}

	// 2. 验证 Webhook 签名（使用 Svix SDK）
	evt, err := wc.verifier.Verify(body, c.Request.Header)
	switch {
	case err == nil:
	case errors.Is(err, clerkhook.ErrMissingHeaders):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing Svix headers"})
		return
	case errors.Is(err, clerkhook.ErrInvalidSignature):
		wc.log.Warnw("[Webhook] ❌ 签名验证失败", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook signature"})
		return
	default:
		wc.internalError(c, err)
		return
	}

	wc.log.Infow("[Webhook] 📥 收到事件", "type", evt.Type, "svix_id", c.GetHeader(clerkhook.HeaderID))

	// 3. 只处理 user.created
	if evt.Type != clerkhook.EventUserCreated {
		wc.log.Infow("[Webhook] ℹ️ 忽略事件", "type", evt.Type)
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid event type"})
		return
	}

	data, err := evt.UserData()
	if err != nil {
		wc.internalError(c, err)
		return
	}

	// 4. 幂等创建
	user, created, err := wc.syncer.SyncCreatedUser(c.Request.Context(), data)
	if err != nil {
		wc.internalError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, UserResponse{Message: "User already exists", User: user})
		return
	}
	c.JSON(http.StatusCreated, UserResponse{Message: "User created successfully", User: user})
}

func (wc *WebhookController) internalError(c *gin.Context, err error) {
	wc.log.Errorw("[Webhook] ❌ 处理失败", "error", err)
	c.JSON(http.StatusInternalServerError, InternalErrorResponse{
		Message: "Internal server error",
		Error:   err.Error(),
	})
}
