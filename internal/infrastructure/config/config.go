package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Stream    StreamConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	RateLimit RateLimitConfig
	Scaler    ScalerConfig
}

type ServerConfig struct {
	Port              int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout       time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	Environment       string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Enabled         bool          `envconfig:"DB_ENABLED" default:"false"`
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"scaler"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey string        `envconfig:"JWT_SECRET_KEY"`
	Issuer    string        `envconfig:"JWT_ISSUER" default:"image-scaler"`
	TokenTTL  time.Duration `envconfig:"JWT_TOKEN_TTL" default:"8760h"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type StreamConfig struct {
	Name         string        `envconfig:"STREAM_NAME" default:"scaler:jobs"`
	Group        string        `envconfig:"STREAM_GROUP" default:"scaler"`
	Consumer     string        `envconfig:"STREAM_CONSUMER" default:"scaler-1"`
	Workers      int           `envconfig:"STREAM_WORKERS" default:"2"`
	MaxAttempts  int           `envconfig:"STREAM_MAX_ATTEMPTS" default:"5"`
	MaxLen       int64         `envconfig:"STREAM_MAX_LEN" default:"100000"`
	BackoffBase  time.Duration `envconfig:"STREAM_BACKOFF_BASE" default:"500ms"`
	BlockTimeout time.Duration `envconfig:"STREAM_BLOCK_TIMEOUT" default:"5s"`
	AsyncEvents  bool          `envconfig:"STREAM_ASYNC_EVENTS" default:"false"`
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"600"`
}

type ScalerConfig struct {
	Prefix      string `envconfig:"SCALER_PREFIX" default:"scaled"`
	Targets     []int  `envconfig:"SCALER_TARGETS" default:"200,400,800"`
	JPEGQuality int    `envconfig:"SCALER_JPEG_QUALITY" default:"90"`
	Workers     int    `envconfig:"SCALER_WORKERS" default:"0"`
}

// WorkerCount falls back to the number of CPUs; resampling is CPU-bound.
func (c ScalerConfig) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func (c ScalerConfig) Validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("scaler prefix must not be empty")
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one scale target is required")
	}
	seen := make(map[int]bool, len(c.Targets))
	for _, t := range c.Targets {
		if t <= 0 {
			return fmt.Errorf("scale target must be positive, got %d", t)
		}
		if seen[t] {
			return fmt.Errorf("scale target %d is listed twice", t)
		}
		seen[t] = true
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Scaler.Validate(); err != nil {
		return nil, fmt.Errorf("validating scaler config: %w", err)
	}
	return &cfg, nil
}
