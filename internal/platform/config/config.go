// Package config loads and validates the service configuration. Values are
// layered: built-in defaults, then configs/base.yaml, then
// configs/{profile}.yaml, then APP_-prefixed environment variables.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Store     StoreConfig     `koanf:"store"`
	I18n      I18nConfig      `koanf:"i18n"`
	Schedule  ScheduleConfig  `koanf:"schedule"`
	Fanout    FanoutConfig    `koanf:"fanout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds the report renderer client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig caps outbound requests. A zero rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Store drivers.
const (
	DriverMemory = "memory"
	DriverBadger = "badger"
	DriverMongo  = "mongo"
)

// StoreConfig selects and configures the entity store.
type StoreConfig struct {
	Driver string       `koanf:"driver"`
	Badger BadgerConfig `koanf:"badger"`
	Mongo  MongoConfig  `koanf:"mongo"`
}

// BadgerConfig configures the embedded badger store.
type BadgerConfig struct {
	Dir      string `koanf:"dir"`
	InMemory bool   `koanf:"in_memory"`
}

// MongoConfig configures the MongoDB store.
type MongoConfig struct {
	URI      string        `koanf:"uri"`
	Database string        `koanf:"database"`
	Timeout  time.Duration `koanf:"timeout"`
}

// I18nConfig holds localization settings.
type I18nConfig struct {
	DefaultLocale string `koanf:"default_locale"`
}

// ScheduleConfig holds sequence scheduling settings.
type ScheduleConfig struct {
	// AnchorOffset is the delay from now to the first scheduled step.
	AnchorOffset time.Duration `koanf:"anchor_offset"`
}

// FanoutConfig bounds concurrent store lookups and bulk updates.
type FanoutConfig struct {
	MaxWorkers int `koanf:"max_workers"`
}
