package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Store.Driver != config.DriverMemory {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverMemory)
	}
}

func TestLoad_DevProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("dev")
	if err != nil {
		t.Fatalf("Load(\"dev\") error: %v", err)
	}

	if cfg.Store.Driver != config.DriverBadger {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverBadger)
	}
	if cfg.Store.Badger.Dir == "" {
		t.Error("Store.Badger.Dir is empty, want a data directory for dev")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
		t.Errorf("Telemetry = %+v, want enabled otlp with an endpoint", cfg.Telemetry)
	}
	if cfg.Store.Driver != config.DriverMongo || cfg.Store.Mongo.URI == "" {
		t.Errorf("Store = %+v, want mongo with a uri", cfg.Store)
	}
	if cfg.Client.RateLimit.RequestsPerSecond <= 0 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want a limit in prod", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_BaseAndDefaultInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// From base.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}

	// From the built-in defaults.
	if cfg.Schedule.AnchorOffset != 24*time.Hour {
		t.Errorf("Schedule.AnchorOffset = %v, want 24h (default)", cfg.Schedule.AnchorOffset)
	}
	if cfg.Store.Mongo.Timeout != 10*time.Second {
		t.Errorf("Store.Mongo.Timeout = %v, want 10s (default)", cfg.Store.Mongo.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		check func(*config.Config) bool
	}{
		{"simple key", "APP_SERVER_PORT", "9090", func(c *config.Config) bool { return c.Server.Port == 9090 }},
		{"snake case key", "APP_SERVER_READ_TIMEOUT", "15s", func(c *config.Config) bool { return c.Server.ReadTimeout == 15*time.Second }},
		{"deeply nested key", "APP_CLIENT_RETRY_MAX_ATTEMPTS", "7", func(c *config.Config) bool { return c.Client.Retry.MaxAttempts == 7 }},
		{"key only in defaults", "APP_FANOUT_MAX_WORKERS", "32", func(c *config.Config) bool { return c.Fanout.MaxWorkers == 32 }},
		{"store section", "APP_STORE_BADGER_IN_MEMORY", "true", func(c *config.Config) bool { return c.Store.Badger.InMemory }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("%s=%s was not applied", tt.env, tt.value)
			}
		})
	}
}

func TestLoad_BadProfiles(t *testing.T) {
	t.Chdir("../../..")

	for _, profile := range []string{"nonexistent", "", "../prod", `..\prod`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }, true},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "verbose" }, true},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, true},
		{"negative rate", func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }, true},
		{"rate without burst", func(c *config.Config) {
			c.Client.RateLimit.RequestsPerSecond = 5
			c.Client.RateLimit.Burst = 0
		}, true},
		{"unknown store driver", func(c *config.Config) { c.Store.Driver = "postgres" }, true},
		{"mongo without uri", func(c *config.Config) { c.Store.Driver = config.DriverMongo }, true},
		{"mongo complete", func(c *config.Config) {
			c.Store.Driver = config.DriverMongo
			c.Store.Mongo.URI = "mongodb://localhost:27017"
		}, false},
		{"badger without dir", func(c *config.Config) {
			c.Store.Driver = config.DriverBadger
			c.Store.Badger.Dir = ""
		}, true},
		{"badger in memory", func(c *config.Config) {
			c.Store.Driver = config.DriverBadger
			c.Store.Badger.Dir = ""
			c.Store.Badger.InMemory = true
		}, false},
		{"bad locale", func(c *config.Config) { c.I18n.DefaultLocale = "not a tag!" }, true},
		{"negative anchor", func(c *config.Config) { c.Schedule.AnchorOffset = -time.Hour }, true},
		{"no workers", func(c *config.Config) { c.Fanout.MaxWorkers = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{Burst: 10},
		},
		Telemetry: config.TelemetryConfig{
			Exporter:    "stdout",
			ServiceName: "pipeline-crm",
		},
		Store: config.StoreConfig{
			Driver: config.DriverMemory,
			Badger: config.BadgerConfig{Dir: "data/badger"},
			Mongo:  config.MongoConfig{Database: "pipeline_crm", Timeout: 10 * time.Second},
		},
		I18n:     config.I18nConfig{DefaultLocale: "en"},
		Schedule: config.ScheduleConfig{AnchorOffset: 24 * time.Hour},
		Fanout:   config.FanoutConfig{MaxWorkers: 8},
	}
}
