// Package main is the entry point for the pipeline CRM service. It wires
// dependencies with samber/do v2, opens the configured store, serves the
// HTTP API and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/pipeline-crm/internal/adapters/http"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pipeline-crm/internal/app"
	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/health"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/logging"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

const (
	serverShutdownTimeout    = 15 * time.Second
	containerShutdownTimeout = 10 * time.Second
	otelShutdownTimeout      = 5 * time.Second
	rendererServiceName      = "report-renderer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	injector := do.New()
	defer shutdownContainer(injector, logger)

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the full graph, opening the store.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.ReportClient](injector))
	if b := do.MustInvoke[*backend](injector); b.health != nil {
		registry.Register(b.health)
	}

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("shutdown signal received")
	return nil
}

func shutdownContainer(injector *do.RootScope, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), containerShutdownTimeout)
	defer cancel()

	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		logger.Error("dependency shutdown error", slog.String("error", report.Error()))
	}
	logger.Info("shutdown complete")
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func flushTelemetry(o *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := o.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerInfrastructure(ctx, injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHandlers(injector)

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		catalog := do.MustInvoke[*i18n.Catalog](i)

		requestTimeout := cfg.Server.RequestTimeout
		if requestTimeout <= 0 {
			requestTimeout = cfg.Server.WriteTimeout
		}

		return adapthttp.NewRouter(do.MustInvoke[adapthttp.Handlers](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Locale(catalog),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(requestTimeout),
			middleware.AppContext(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

func registerInfrastructure(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*i18n.Catalog, error) {
		return i18n.New(cfg.I18n.DefaultLocale)
	})

	do.Provide(injector, func(i do.Injector) (*backend, error) {
		return openBackend(ctx, cfg.Store, do.MustInvoke[*telemetry.Metrics](i), logger)
	})

	do.Provide(injector, func(i do.Injector) (*app.Engines, error) {
		return app.NewEngines(do.MustInvoke[*backend](i).stores, nil, logger)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, rendererServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ReportClient, error) {
		return acl.NewReportClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	workers := cfg.Fanout.MaxWorkers

	do.Provide(injector, func(i do.Injector) (ports.LeadService, error) {
		e := do.MustInvoke[*app.Engines](i)
		return app.NewLeadService(e.Leads, e.Todos, workers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProspectService, error) {
		e := do.MustInvoke[*app.Engines](i)
		return app.NewProspectService(e.Prospects, e.Interactions, e.Todos, workers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SequenceService, error) {
		e := do.MustInvoke[*app.Engines](i)
		return app.NewSequenceService(e.Sequences, e.Steps, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CampaignService, error) {
		e := do.MustInvoke[*app.Engines](i)
		return app.NewCampaignService(e.Campaigns, e.Prospects, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		e := do.MustInvoke[*app.Engines](i)
		return app.NewTodoService(e.Todos, workers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ScheduleService, error) {
		e := do.MustInvoke[*app.Engines](i)
		return app.NewScheduleService(app.ScheduleConfig{
			Accounts:     e.Accounts,
			Leads:        e.Leads,
			Prospects:    e.Prospects,
			Sequences:    e.Sequences,
			Steps:        e.Steps,
			Todos:        e.Todos,
			AnchorOffset: cfg.Schedule.AnchorOffset,
			Logger:       logger,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReportService, error) {
		e := do.MustInvoke[*app.Engines](i)
		client := do.MustInvoke[*acl.ReportClient](i)
		return app.NewReportService(e.Accounts, e.Leads, e.Prospects, e.Todos, client, workers, logger), nil
	})
}

// entityHandler builds the CRUD handler for an entity with no extra routes.
func entityHandler[F, T any](i do.Injector, engine func(*app.Engines) *lifecycle.Engine[F, T]) *handlers.EntityHandler[F] {
	e := do.MustInvoke[*app.Engines](i)
	svc := app.NewEntityService(engine(e), do.MustInvoke[*slog.Logger](i))
	return handlers.NewEntityHandler[F](svc, do.MustInvoke[*handlers.Validator](i))
}

func registerHandlers(injector *do.RootScope) {
	do.Provide(injector, func(_ do.Injector) (*handlers.Validator, error) {
		return handlers.NewValidator(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		v := do.MustInvoke[*handlers.Validator](i)
		return adapthttp.Handlers{
			Accounts:     entityHandler(i, func(e *app.Engines) *lifecycle.Engine[account.Form, account.Account] { return e.Accounts }),
			Companies:    entityHandler(i, func(e *app.Engines) *lifecycle.Engine[company.Form, company.Company] { return e.Companies }),
			People:       entityHandler(i, func(e *app.Engines) *lifecycle.Engine[person.Form, person.Person] { return e.People }),
			Steps:        entityHandler(i, func(e *app.Engines) *lifecycle.Engine[sequence.StepForm, sequence.Step] { return e.Steps }),
			Interactions: entityHandler(i, func(e *app.Engines) *lifecycle.Engine[interaction.Form, interaction.Interaction] { return e.Interactions }),
			Leads:        handlers.NewLeadHandler(do.MustInvoke[ports.LeadService](i), v),
			Prospects:    handlers.NewProspectHandler(do.MustInvoke[ports.ProspectService](i), v),
			Campaigns:    handlers.NewCampaignHandler(do.MustInvoke[ports.CampaignService](i), v),
			Sequences:    handlers.NewSequenceHandler(do.MustInvoke[ports.SequenceService](i), v),
			Todos:        handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i), v),
			Schedule:     handlers.NewScheduleHandler(do.MustInvoke[ports.ScheduleService](i), v),
			Reports:      handlers.NewReportHandler(do.MustInvoke[ports.ReportService](i)),
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})
}
