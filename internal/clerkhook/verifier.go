// Package clerkhook 验证 Clerk 通过 Svix 投递的 Webhook 并解析事件
package clerkhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// Svix 签名头，名称必须原样保留
const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

var (
	// ErrSecretNotConfigured 未配置（或配置了无效的）CLERK_WEBHOOK_SECRET
	ErrSecretNotConfigured = errors.New("webhook secret is not configured")
	// ErrMissingHeaders 缺少 svix 签名头
	ErrMissingHeaders = errors.New("missing svix headers")
	// ErrInvalidSignature 签名验证失败
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedPayload 签名正确但负载不是合法的事件 JSON
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// Verifier Svix 签名验证器
type Verifier struct {
	wh      *svix.Webhook
	initErr error
}

// NewVerifier 构造函数
// secret 为空或格式无效时不会报错，错误推迟到 Verify 时返回，
// 这样服务仍可启动，只有 Webhook 请求失败
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return &Verifier{initErr: ErrSecretNotConfigured}
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return &Verifier{initErr: fmt.Errorf("%w: %v", ErrSecretNotConfigured, err)}
	}
	return &Verifier{wh: wh}
}

// Verify 校验原始请求体的签名并解析事件
// body 必须是收到的原始字节，任何重新序列化都会导致签名失效
func (v *Verifier) Verify(body []byte, header http.Header) (*Event, error) {
	if v.initErr != nil {
		return nil, v.initErr
	}

	// 缺少任意一个签名头时直接拒绝，不做验证
	if header.Get(HeaderID) == "" || header.Get(HeaderTimestamp) == "" || header.Get(HeaderSignature) == "" {
		return nil, ErrMissingHeaders
	}

	if err := v.wh.Verify(body, header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &evt, nil
}
