package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port     string `yaml:"port"`
	Timezone string `yaml:"timezone"` // UTC 偏移量，用于 publishTime 格式化，如 "+08:00"
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TLS      bool   `yaml:"tls"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Expire int64  `yaml:"expire"` // 秒
}

type AuthConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type RateLimitConfig struct {
	RegisterLimit  int64 `yaml:"register_limit"`
	RegisterWindow int64 `yaml:"register_window"` // 秒
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Load reads config.yaml from path and applies environment overrides.
// The returned value is handed explicitly to every constructor; there is
// no package-level config state.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path + "/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// NewRedis 创建 Redis 客户端（限流器和 token 黑名单使用）
func NewRedis(cfg RedisConfig) *redis.Client {
	opt := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opt.TLSConfig = &tls.Config{}
	}
	return redis.NewClient(opt)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_EXPIRE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.JWT.Expire = parsed
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":9527"
	}
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "+08:00"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "news"
	}
	if cfg.JWT.Expire == 0 {
		cfg.JWT.Expire = 86400
	}
	if cfg.RateLimit.RegisterLimit == 0 {
		cfg.RateLimit.RegisterLimit = 10
	}
	if cfg.RateLimit.RegisterWindow == 0 {
		cfg.RateLimit.RegisterWindow = 60
	}
}
