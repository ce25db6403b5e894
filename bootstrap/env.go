package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Env 环境变量配置结构
// 启动时构造一次，之后以指针形式注入各组件，handler 内部不再读取环境变量
type Env struct {
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`         // 数据库连接字符串（postgres:// 或 mysql://）
	ClerkSecretKey     string        `mapstructure:"CLERK_SECRET_KEY"`     // Clerk API 密钥，用于验证会话 Token
	WebhookSecret      string        `mapstructure:"CLERK_WEBHOOK_SECRET"` // Clerk Webhook 签名密钥
	Port               string        `mapstructure:"PORT"`                 // 服务端口
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"` // 逗号分隔
	DBMaxIdleConns     int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns     int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime  time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// DotenvLoaded 是否找到了 .env 文件（日志器初始化前无法打印，交给调用方记录）
	DotenvLoaded bool `mapstructure:"-"`
}

// LoadEnv 加载环境变量
// 开发环境从 .env 文件加载，生产环境从系统环境变量读取；系统环境变量优先
func LoadEnv() (*Env, error) {
	// 尝试加载 .env 文件（生产环境可能没有）
	dotenvErr := godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	// viper 只会 Unmarshal 已知的 key，因此每个字段都需要默认值
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("CLERK_SECRET_KEY", "")
	v.SetDefault("CLERK_WEBHOOK_SECRET", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, err
	}
	env.DotenvLoaded = dotenvErr == nil

	// 必需变量检查
	if env.DatabaseURL == "" {
		return nil, errors.New("缺少必需环境变量: DATABASE_URL")
	}
	if env.Port == "" {
		env.Port = "8080"
	}
	switch env.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE 取值无效: %q（debug / release / test）", env.GinMode)
	}

	return &env, nil
}

// AllowedOrigins 解析 CORS 允许的来源列表
func (e *Env) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(e.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// DatabaseConfig 提取数据库相关配置
func (e *Env) DatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		DSN:             e.DatabaseURL,
		MaxIdleConns:    e.DBMaxIdleConns,
		MaxOpenConns:    e.DBMaxOpenConns,
		ConnMaxLifetime: e.DBConnMaxLifetime,
	}
}
