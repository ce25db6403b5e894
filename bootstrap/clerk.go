package bootstrap

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"go.uber.org/zap"
)

// InitClerk 设置 Clerk SDK 全局密钥
// 未配置时服务照常启动，只是所有会话 Token 都无法通过验证
func InitClerk(secretKey string, log *zap.SugaredLogger) {
	if secretKey == "" {
		log.Warn("[Clerk] ⚠️ 未配置 CLERK_SECRET_KEY，受保护路由将全部返回 401")
		return
	}
	clerk.SetKey(secretKey)

	log.Info("[Clerk] Clerk 初始化成功")
}
