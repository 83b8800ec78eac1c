package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	JWT            JWTConfig            `mapstructure:"jwt"`
	Log            LogConfig            `mapstructure:"log"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	WeChat         WeChatConfig         `mapstructure:"wechat"`
	COS            COSConfig            `mapstructure:"cos"`
	Sentry         SentryConfig         `mapstructure:"sentry"`
	Tracing        TracingConfig        `mapstructure:"tracing"`
	RateLimit      RateLimitConfig      `mapstructure:"ratelimit"`
	Browse         BrowseConfig         `mapstructure:"browse"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres | sqlite
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig 后台与小程序端分别签发令牌
type JWTConfig struct {
	AdminSecret     string        `mapstructure:"admin_secret"`
	AdminTTL        time.Duration `mapstructure:"admin_ttl"`
	AdminTokenName  string        `mapstructure:"admin_token_name"`
	ClientSecret    string        `mapstructure:"client_secret"`
	ClientTTL       time.Duration `mapstructure:"client_ttl"`
	ClientTokenName string        `mapstructure:"client_token_name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RecommendationConfig 推荐服务配置
type RecommendationConfig struct {
	Engine          string        `mapstructure:"engine"`  // process | local
	Command         string        `mapstructure:"command"` // python3
	Path            string        `mapstructure:"path"`    // 脚本目录
	Method          string        `mapstructure:"method"`
	Count           int           `mapstructure:"count"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PopularCacheTTL time.Duration `mapstructure:"popular_cache_ttl"`
	BreakerFailures uint32        `mapstructure:"breaker_failures"`
	BreakerTimeout  time.Duration `mapstructure:"breaker_timeout"`
}

type WeChatConfig struct {
	AppID   string `mapstructure:"app_id"`
	Secret  string `mapstructure:"secret"`
	BaseURL string `mapstructure:"base_url"`
}

type COSConfig struct {
	BucketURL string `mapstructure:"bucket_url"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// BrowseConfig 浏览记录异步写入
type BrowseConfig struct {
	Async     bool `mapstructure:"async"`
	QueueSize int  `mapstructure:"queue_size"`
	Workers   int  `mapstructure:"workers"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Load 读取 config.yaml（可选）与 APP_ 前缀的环境变量
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "food_share.db")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.admin_secret", "food-share-admin")
	v.SetDefault("jwt.admin_ttl", 2*time.Hour)
	v.SetDefault("jwt.admin_token_name", "token")
	v.SetDefault("jwt.client_secret", "food-share-client")
	v.SetDefault("jwt.client_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.client_token_name", "authentication")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("recommendation.engine", "process")
	v.SetDefault("recommendation.command", "python3")
	v.SetDefault("recommendation.path", "./recommendation-service")
	v.SetDefault("recommendation.method", "hybrid")
	v.SetDefault("recommendation.count", 20)
	v.SetDefault("recommendation.timeout", 10*time.Second)
	v.SetDefault("recommendation.popular_cache_ttl", 30*time.Minute)
	v.SetDefault("recommendation.breaker_failures", 5)
	v.SetDefault("recommendation.breaker_timeout", 30*time.Second)

	v.SetDefault("wechat.base_url", "https://api.weixin.qq.com")

	v.SetDefault("cos.prefix", "food-share")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4318")
	v.SetDefault("tracing.service_name", "food-share-server")

	v.SetDefault("ratelimit.rps", 20)
	v.SetDefault("ratelimit.burst", 40)

	v.SetDefault("browse.async", true)
	v.SetDefault("browse.queue_size", 10000)
	v.SetDefault("browse.workers", 2)
}
