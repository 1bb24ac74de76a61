package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
	Orders     OrdersConfig
	Admin      AdminConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"3000"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	Version        string `env:"SERVICE_VERSION" envDefault:"dev"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"pizza"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type MetricsConfig struct {
	Source                 string        `env:"METRICS_SOURCE" envDefault:"jwt-pizza-service"`
	URL                    string        `env:"METRICS_URL"`
	UserID                 string        `env:"METRICS_USER_ID"`
	APIKey                 string        `env:"METRICS_API_KEY"`
	ExportInterval         time.Duration `env:"METRICS_EXPORT_INTERVAL" envDefault:"30s"`
	ExportTimeout          time.Duration `env:"METRICS_EXPORT_TIMEOUT" envDefault:"10s"`
	PruneInterval          time.Duration `env:"METRICS_PRUNE_INTERVAL" envDefault:"10s"`
	SeriesCapacity         int           `env:"METRICS_SERIES_CAPACITY" envDefault:"1000"`
	EndpointSeriesCapacity int           `env:"METRICS_ENDPOINT_SERIES_CAPACITY" envDefault:"100"`
}

// ExportEnabled reports whether enough network configuration is present to
// push metrics. In-process aggregation runs regardless.
func (c *MetricsConfig) ExportEnabled() bool {
	return c.URL != "" && c.APIKey != ""
}

type LoggingConfig struct {
	Source        string        `env:"LOGGING_SOURCE" envDefault:"jwt-pizza-service"`
	URL           string        `env:"LOGGING_URL"`
	UserID        string        `env:"LOGGING_USER_ID"`
	APIKey        string        `env:"LOGGING_API_KEY"`
	BufferSize    int           `env:"LOGGING_BUFFER_SIZE" envDefault:"1000"`
	BatchSize     int           `env:"LOGGING_BATCH_SIZE" envDefault:"100"`
	FlushInterval time.Duration `env:"LOGGING_FLUSH_INTERVAL" envDefault:"5s"`
	RPS           float64       `env:"LOGGING_RPS" envDefault:"200"`
	Burst         int           `env:"LOGGING_BURST" envDefault:"400"`
}

func (c *LoggingConfig) ShippingEnabled() bool {
	return c.URL != ""
}

type SessionConfig struct {
	TTL         time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	MaxSizePow2 int           `env:"SESSION_CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TokenLength int           `env:"SESSION_TOKEN_MIN_LENGTH" envDefault:"16"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"LOGIN_RATE_LIMIT_RPS" envDefault:"5"`
	Burst         int     `env:"LOGIN_RATE_LIMIT_BURST" envDefault:"10"`
	ExpireMinutes int     `env:"LOGIN_RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"LOGIN_RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
	MaxOrderItems      int    `env:"MAX_ORDER_ITEMS" envDefault:"50"`
	MinPasswordLength  int    `env:"MIN_PASSWORD_LENGTH" envDefault:"8"`
	BcryptCost         int    `env:"BCRYPT_COST" envDefault:"10"`
}

type OrdersConfig struct {
	PageSize int `env:"ORDERS_PAGE_SIZE" envDefault:"10"`
}

// AdminConfig seeds one admin account at startup when both email and
// password are set.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME" envDefault:"pizza admin"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

func (c *AdminConfig) Enabled() bool {
	return c.Email != "" && c.Password != ""
}

// CORSConfig lists allowed origins. An empty list reflects any request origin.
type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
