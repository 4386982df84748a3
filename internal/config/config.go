// Package config loads and holds the application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Conf is the global configuration loaded from the YAML file and environment.
var Conf Config

// Config mirrors the structure of configs/config.yaml.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Log           LogConfig           `mapstructure:"log"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Tika          TikaConfig          `mapstructure:"tika"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Dashboard     DashboardConfig     `mapstructure:"dashboard"`
	Seed          SeedConfig          `mapstructure:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// Env follows NODE_ENV semantics: "production" switches gin to release mode.
	Env string `mapstructure:"env"`
}

// DatabaseConfig holds the relational store and Redis settings.
type DatabaseConfig struct {
	Driver       string      `mapstructure:"driver"` // postgres, mysql or sqlite
	DSN          string      `mapstructure:"dsn"`
	MaxIdleConns int         `mapstructure:"max_idle_conns"`
	MaxOpenConns int         `mapstructure:"max_open_conns"`
	AutoMigrate  bool        `mapstructure:"auto_migrate"`
	Redis        RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the Redis connection settings. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret                 string `mapstructure:"secret"`
	AccessTokenExpireHours int    `mapstructure:"access_token_expire_hours"`
	RefreshTokenExpireDays int    `mapstructure:"refresh_token_expire_days"`
}

// AuthConfig controls whether mutating routes require a bearer token.
type AuthConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	AdminUsername     string `mapstructure:"admin_username"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"` // bcrypt
}

// KafkaConfig holds the broker settings. An empty Brokers disables Kafka.
type KafkaConfig struct {
	Brokers     string `mapstructure:"brokers"`
	TaskTopic   string `mapstructure:"task_topic"`
	EventsTopic string `mapstructure:"events_topic"`
	GroupID     string `mapstructure:"group_id"`
}

// MinIOConfig holds object storage settings. An empty Endpoint disables attachments.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
}

// ElasticsearchConfig holds search settings. An empty Addresses disables search.
type ElasticsearchConfig struct {
	Addresses string `mapstructure:"addresses"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	IndexName string `mapstructure:"index_name"`
}

// TikaConfig holds the Apache Tika server location.
type TikaConfig struct {
	ServerURL string `mapstructure:"server_url"`
}

// LLMConfig holds the OpenAI-compatible chat endpoint used for document suggestions.
type LLMConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// DashboardConfig holds settings for the composite dashboard endpoints.
type DashboardConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// SeedConfig controls demo data insertion.
type SeedConfig struct {
	OnStartup bool `mapstructure:"on_startup"`
}

// IsProduction reports whether the server runs with NODE_ENV=production semantics.
func (c ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("jwt.access_token_expire_hours", 24)
	v.SetDefault("jwt.refresh_token_expire_days", 7)
	v.SetDefault("kafka.task_topic", "bizops-tasks")
	v.SetDefault("kafka.events_topic", "bizops-events")
	v.SetDefault("kafka.group_id", "bizops-dashboard-consumer")
	v.SetDefault("minio.bucket_name", "bizops-documents")
	v.SetDefault("elasticsearch.index_name", "bizops_documents")
	v.SetDefault("dashboard.cache_ttl", "30s")
	v.SetDefault("seed.on_startup", false)
	v.SetDefault("auth.enabled", false)

	// Keys without a meaningful default still need registering so that
	// AutomaticEnv can override them during Unmarshal.
	for _, key := range []string{
		"database.dsn", "database.redis.addr", "database.redis.password",
		"jwt.secret", "auth.admin_username", "auth.admin_password_hash",
		"kafka.brokers", "minio.endpoint", "minio.access_key_id", "minio.secret_access_key",
		"elasticsearch.addresses", "elasticsearch.username", "elasticsearch.password",
		"tika.server_url", "llm.api_key", "llm.base_url", "llm.model",
	} {
		if !v.IsSet(key) {
			v.SetDefault(key, "")
		}
	}
}

// Load reads the YAML file at configPath (optional) and applies environment overrides.
func Load(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BIZOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// DATABASE_URL and NODE_ENV keep existing deployments working unchanged; NODE_ENV wins over APP_ENV.
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	for _, key := range []string{"APP_ENV", "NODE_ENV"} {
		if env := os.Getenv(key); env != "" {
			cfg.Server.Env = env
		}
	}
	return cfg, nil
}

// Init loads the configuration into Conf and panics on failure.
func Init(configPath string) {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	Conf = cfg
}
