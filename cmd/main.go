package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-sync-server/api/controller"
	"user-sync-server/api/middleware"
	"user-sync-server/api/route"
	"user-sync-server/bootstrap"
	"user-sync-server/internal/clerkhook"
	"user-sync-server/internal/logger"
	"user-sync-server/repository"
	"user-sync-server/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载环境变量
	env, err := bootstrap.LoadEnv()
	if err != nil {
		log.Fatalf("[Server] ❌ 配置加载失败: %v", err)
	}

	zlog, err := logger.New(env.LogLevel)
	if err != nil {
		log.Fatalf("[Server] ❌ 日志初始化失败: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	zlog.Info("[Server] User Sync Server 启动中...")
	if !env.DotenvLoaded {
		zlog.Info("[Server] ⚠️ .env 文件未找到，将使用系统环境变量")
	}
	if env.WebhookSecret == "" {
		zlog.Warn("[Server] ⚠️ 未配置 CLERK_WEBHOOK_SECRET，Webhook 请求将返回 500")
	}

	// 初始化 Clerk
	bootstrap.InitClerk(env.ClerkSecretKey, zlog)

	// 连接数据库；没有可用的持久层就不提供服务
	db, err := bootstrap.NewDatabase(env.DatabaseConfig())
	if err != nil {
		zlog.Fatalw("[Server] ❌ 数据库初始化失败", "error", err)
	}
	zlog.Info("[Server] ✅ 数据库连接成功，表结构已同步")

	// 依赖注入 - Repository 层
	userRepo := repository.NewUserRepository(db)

	// 依赖注入 - UseCase 层
	userSyncUseCase := usecase.NewUserSyncUseCase(userRepo, zlog)

	// 依赖注入 - Controller 层
	webhookController := controller.NewWebhookController(
		clerkhook.NewVerifier(env.WebhookSecret), userSyncUseCase, zlog)
	protectedController := controller.NewProtectedController()

	// 配置 Gin 路由
	gin.SetMode(env.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(zlog))

	// CORS 配置
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if origins := env.AllowedOrigins(); len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// 设置路由
	route.Setup(router, &route.Dependencies{
		WebhookController:   webhookController,
		ProtectedController: protectedController,
		SessionVerifier:     middleware.ClerkSessionVerifier(),
		Logger:              zlog,
	})

	// 启动 HTTP 服务
	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Infof("[Server] 服务已启动: http://localhost:%s", env.Port)
		zlog.Info("[Server] API 端点:")
		zlog.Info("   GET  /                 - 存活检查")
		zlog.Info("   GET  /health           - 健康检查")
		zlog.Info("   POST /clerk-webhook    - Clerk Webhook")
		zlog.Info("   POST /clerk/webhook    - Clerk Webhook")
		zlog.Info("   GET  /protected-route  - 需要登录")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatalw("[Server] 服务启动失败", "error", err)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("[Server] 收到停机信号，正在优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Errorw("[Server] 服务强制关闭", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	zlog.Info("[Server] 服务已安全停止")
}
