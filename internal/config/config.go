package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig 数据库配置
// URL 为空时回退到本地 SQLite 文件
type DatabaseConfig struct {
	URL             string `mapstructure:"url"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
	SlowThresholdMs int    `mapstructure:"slow_threshold_ms"`
}

// UsesPostgres 是否配置了 PostgreSQL 连接串
// URL 和 key=value 两种 DSN 都交给 postgres 驱动，只有未配置时才退回 SQLite
func (d *DatabaseConfig) UsesPostgres() bool {
	return strings.TrimSpace(d.URL) != ""
}

// SlowThreshold 返回慢查询阈值
func (d *DatabaseConfig) SlowThreshold() time.Duration {
	return time.Duration(d.SlowThresholdMs) * time.Millisecond
}

// RedisConfig Redis配置
type RedisConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	PoolSize   int    `mapstructure:"pool_size"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// TTL 返回缓存过期时间
func (r *RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	Brokers          []string `mapstructure:"brokers"`
	Topic            string   `mapstructure:"topic"`
	PublishTimeoutMs int      `mapstructure:"publish_timeout_ms"`
}

// PublishTimeout 单条事件发送的最长等待时间
func (k *KafkaConfig) PublishTimeout() time.Duration {
	return time.Duration(k.PublishTimeoutMs) * time.Millisecond
}

// CORSConfig 跨域配置，AllowOrigins 为空表示允许所有来源
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "holocron-go")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 3000)

	v.SetDefault("database.url", "")
	v.SetDefault("database.sqlite_path", "/tmp/test.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 3600)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.slow_threshold_ms", 200)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.ttl_seconds", 300)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "holocron.favorites")
	v.SetDefault("kafka.publish_timeout_ms", 500)

	v.SetDefault("cors.allow_origins", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/app.log")
}

// Load 加载配置：默认值 -> 配置文件（可选）-> 环境变量
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// 读取环境变量，app.port 对应 APP_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 兼容部署平台常用的变量名
	if err := v.BindEnv("database.url", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATABASE_URL: %w", err)
	}
	if err := v.BindEnv("app.port", "PORT", "APP_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			// 配置文件不存在时仅使用默认值和环境变量
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
