package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate checks every section and joins the failures.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Store.validate(),
		c.I18n.validate(),
		c.Schedule.validate(),
		c.Fanout.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst must be >= 1 when limiting, got %d", cl.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverBadger:
		if !s.Badger.InMemory && s.Badger.Dir == "" {
			return errors.New("store.badger.dir must not be empty unless store.badger.in_memory is set")
		}
		return nil
	case DriverMongo:
		var errs []error
		if s.Mongo.URI == "" {
			errs = append(errs, errors.New("store.mongo.uri must not be empty when driver is mongo"))
		}
		if s.Mongo.Database == "" {
			errs = append(errs, errors.New("store.mongo.database must not be empty when driver is mongo"))
		}
		if s.Mongo.Timeout <= 0 {
			errs = append(errs, errors.New("store.mongo.timeout must be positive"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("store.driver must be one of: memory, badger, mongo; got %q", s.Driver)
	}
}

func (i *I18nConfig) validate() error {
	if _, err := language.Parse(i.DefaultLocale); err != nil {
		return fmt.Errorf("i18n.default_locale %q is not a BCP 47 tag: %w", i.DefaultLocale, err)
	}
	return nil
}

func (s *ScheduleConfig) validate() error {
	if s.AnchorOffset < 0 {
		return fmt.Errorf("schedule.anchor_offset must not be negative, got %s", s.AnchorOffset)
	}
	return nil
}

func (f *FanoutConfig) validate() error {
	if f.MaxWorkers < 1 {
		return fmt.Errorf("fanout.max_workers must be >= 1, got %d", f.MaxWorkers)
	}
	return nil
}
