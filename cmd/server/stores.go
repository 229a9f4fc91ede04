package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/badgerstore"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/store/mongostore"
	"github.com/jsamuelsen11/pipeline-crm/internal/app"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// backend owns the connection behind the configured store driver.
// samber/do calls Shutdown when the container shuts down.
type backend struct {
	stores app.Stores
	// health is nil for the in-memory driver.
	health ports.HealthChecker
	close  func(context.Context) error
}

// Shutdown releases the underlying connection.
func (b *backend) Shutdown(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

func openBackend(ctx context.Context, cfg config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*backend, error) {
	var (
		b   *backend
		err error
	)
	switch cfg.Driver {
	case config.DriverBadger:
		b, err = openBadger(cfg.Badger, logger)
	case config.DriverMongo:
		b, err = openMongo(ctx, cfg.Mongo)
	default:
		b, err = openMemory()
	}
	if err != nil {
		return nil, err
	}

	in := instrumenter{tracer: otel.Tracer("store")}
	if metrics != nil {
		in.duration = metrics.StoreOperationDuration
	}
	b.stores = in.wrap(b.stores)

	logger.Info("store opened", slog.String("driver", cfg.Driver))
	return b, nil
}

func openMemory() (*backend, error) {
	db, err := memstore.NewDB(
		memstore.Table(app.AccountCollection),
		memstore.Table(app.CompanyCollection),
		memstore.Table(app.PersonCollection),
		memstore.Table(app.LeadCollection),
		memstore.Table(app.ProspectCollection),
		memstore.Table(app.CampaignCollection),
		memstore.Table(app.SequenceCollection),
		memstore.Table(app.StepCollection),
		memstore.Table(app.TodoCollection),
		memstore.Table(app.InteractionCollection),
	)
	if err != nil {
		return nil, fmt.Errorf("creating memory store: %w", err)
	}
	return &backend{stores: app.Stores{
		Accounts:     memstore.New(db, app.AccountCollection),
		Companies:    memstore.New(db, app.CompanyCollection),
		People:       memstore.New(db, app.PersonCollection),
		Leads:        memstore.New(db, app.LeadCollection),
		Prospects:    memstore.New(db, app.ProspectCollection),
		Campaigns:    memstore.New(db, app.CampaignCollection),
		Sequences:    memstore.New(db, app.SequenceCollection),
		Steps:        memstore.New(db, app.StepCollection),
		Todos:        memstore.New(db, app.TodoCollection),
		Interactions: memstore.New(db, app.InteractionCollection),
	}}, nil
}

func openBadger(cfg config.BadgerConfig, logger *slog.Logger) (*backend, error) {
	db, err := badgerstore.Open(badgerstore.Options{Dir: cfg.Dir, InMemory: cfg.InMemory, Logger: logger})
	if err != nil {
		return nil, err
	}
	return &backend{
		stores: app.Stores{
			Accounts:     badgerstore.New(db, app.AccountCollection),
			Companies:    badgerstore.New(db, app.CompanyCollection),
			People:       badgerstore.New(db, app.PersonCollection),
			Leads:        badgerstore.New(db, app.LeadCollection),
			Prospects:    badgerstore.New(db, app.ProspectCollection),
			Campaigns:    badgerstore.New(db, app.CampaignCollection),
			Sequences:    badgerstore.New(db, app.SequenceCollection),
			Steps:        badgerstore.New(db, app.StepCollection),
			Todos:        badgerstore.New(db, app.TodoCollection),
			Interactions: badgerstore.New(db, app.InteractionCollection),
		},
		health: badgerstore.Health{DB: db},
		close:  func(context.Context) error { return db.Close() },
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig) (*backend, error) {
	client, err := mongostore.Connect(ctx, cfg.URI, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Database)

	ix := indexer{ctx: ctx, db: db}
	stores := app.Stores{
		Accounts:     indexed(&ix, app.AccountCollection),
		Companies:    indexed(&ix, app.CompanyCollection),
		People:       indexed(&ix, app.PersonCollection),
		Leads:        indexed(&ix, app.LeadCollection),
		Prospects:    indexed(&ix, app.ProspectCollection),
		Campaigns:    indexed(&ix, app.CampaignCollection),
		Sequences:    indexed(&ix, app.SequenceCollection),
		Steps:        indexed(&ix, app.StepCollection),
		Todos:        indexed(&ix, app.TodoCollection),
		Interactions: indexed(&ix, app.InteractionCollection),
	}
	if err := errors.Join(ix.errs...); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return &backend{
		stores: stores,
		health: mongostore.Health{Client: client},
		close:  client.Disconnect,
	}, nil
}

// indexer collects index creation failures across collections.
type indexer struct {
	ctx  context.Context //nolint:containedctx // scoped to openMongo
	db   *mongo.Database
	errs []error
}

func indexed[T any](ix *indexer, coll ports.Collection[T]) ports.Store[T] {
	s := mongostore.New(ix.db, coll)
	if err := s.EnsureIndexes(ix.ctx); err != nil {
		ix.errs = append(ix.errs, fmt.Errorf("indexing %s: %w", coll.Name, err))
	}
	return s
}

type instrumenter struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

func (in instrumenter) wrap(s app.Stores) app.Stores {
	return app.Stores{
		Accounts:     instrument(in, s.Accounts),
		Companies:    instrument(in, s.Companies),
		People:       instrument(in, s.People),
		Leads:        instrument(in, s.Leads),
		Prospects:    instrument(in, s.Prospects),
		Campaigns:    instrument(in, s.Campaigns),
		Sequences:    instrument(in, s.Sequences),
		Steps:        instrument(in, s.Steps),
		Todos:        instrument(in, s.Todos),
		Interactions: instrument(in, s.Interactions),
	}
}

func instrument[T any](in instrumenter, s ports.Store[T]) ports.Store[T] {
	return store.Instrument(s, in.tracer, in.duration)
}
