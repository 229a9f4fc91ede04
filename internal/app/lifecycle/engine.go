// Package lifecycle implements the generic entity lifecycle: create, find,
// update, delete and list over any entity with a transfer form, plus the
// cascade resolvers that persist referenced child records.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Projector converts between a transfer form F and an entity T. Merge is
// sparse: fields absent from the form leave the entity untouched.
type Projector[F, T any] interface {
	ToEntity(form F) *T
	ToTransfer(entity *T) F
	Merge(entity *T, form F)
}

// ExistsFunc reports whether an entity matching form is already stored.
// candidate describes the match for the duplicate error.
type ExistsFunc[F any] func(ctx context.Context, form F) (candidate string, exists bool, err error)

// Config holds the collaborators of an Engine. Store, Projector and Entity
// are required.
type Config[F, T any] struct {
	Entity    string
	Store     ports.Store[T]
	Projector Projector[F, T]
	Exists    ExistsFunc[F]
	Clock     domain.Clock
	Logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	hooks []any
}

// WithHooks registers lifecycle hooks. Each value must implement at least one
// of InsertHook, UpdateHook or SaveHook for the engine's types. Hooks run in
// the order given, across repeated WithHooks calls.
func WithHooks(h ...any) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, h...)
	}
}

// Engine orchestrates the lifecycle of one entity type.
type Engine[F, T any] struct {
	entity string
	store  ports.Store[T]
	proj   Projector[F, T]
	exists ExistsFunc[F]
	now    domain.Clock
	logger *slog.Logger
	hooks  hookSet[F, T]
}

// NewEngine creates an Engine. It fails when a required collaborator is
// missing or a hook implements no lifecycle event.
func NewEngine[F, T any](cfg Config[F, T], opts ...Option) (*Engine[F, T], error) {
	if cfg.Entity == "" || cfg.Store == nil || cfg.Projector == nil {
		return nil, errors.New("lifecycle: entity, store and projector are required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	hs, err := newHookSet[F, T](o.hooks)
	if err != nil {
		return nil, fmt.Errorf("%s engine: %w", cfg.Entity, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine[F, T]{
		entity: cfg.Entity,
		store:  cfg.Store,
		proj:   cfg.Projector,
		exists: cfg.Exists,
		now:    cfg.Clock.OrDefault(),
		logger: logger.With(slog.String("entity", cfg.Entity)),
		hooks:  hs,
	}, nil
}

// Entity returns the entity type name.
func (e *Engine[F, T]) Entity() string { return e.entity }

// Store returns the underlying store.
func (e *Engine[F, T]) Store() ports.Store[T] { return e.store }

// Projector returns the engine's projector.
func (e *Engine[F, T]) Projector() Projector[F, T] { return e.proj }

// Now returns the engine clock's current time.
func (e *Engine[F, T]) Now() time.Time { return e.now() }

func (e *Engine[F, T]) base(entity *T) *domain.Base {
	return e.store.Collection().Base(entity)
}

// Create stores a new entity built from form. Any id on the form is ignored;
// the store assigns one.
func (e *Engine[F, T]) Create(ctx context.Context, form F) (F, error) {
	var zero F

	if e.exists != nil {
		candidate, found, err := e.exists(ctx, form)
		if err != nil {
			return zero, fmt.Errorf("checking existing %s: %w", e.entity, err)
		}
		if found {
			return zero, &domain.DuplicateError{Entity: e.entity, Candidate: candidate}
		}
	}

	entity := e.proj.ToEntity(form)
	b := e.base(entity)
	b.ID = ""
	b.StampCreated(e.now())

	if err := e.hooks.beforeInsert(ctx, form, entity); err != nil {
		return zero, err
	}

	if err := e.store.Insert(ctx, entity); err != nil {
		return zero, fmt.Errorf("inserting %s: %w", e.entity, err)
	}

	e.logger.DebugContext(ctx, "entity created", slog.String("id", b.ID))
	return e.proj.ToTransfer(entity), nil
}

// FindByID returns the entity with the given id.
func (e *Engine[F, T]) FindByID(ctx context.Context, id string) (F, error) {
	var zero F

	entity, err := e.load(ctx, id)
	if err != nil {
		return zero, err
	}
	return e.proj.ToTransfer(entity), nil
}

// Load returns the stored entity with the given id, for callers that need
// the entity form rather than the transfer form.
func (e *Engine[F, T]) Load(ctx context.Context, id string) (*T, error) {
	return e.load(ctx, id)
}

// FindAll returns every stored entity.
func (e *Engine[F, T]) FindAll(ctx context.Context) ([]F, error) {
	entities, err := e.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", e.entity, err)
	}

	forms := make([]F, 0, len(entities))
	for _, entity := range entities {
		forms = append(forms, e.proj.ToTransfer(entity))
	}
	return forms, nil
}

// Update merges form into the stored entity with the given id. Fields absent
// from form keep their stored values.
func (e *Engine[F, T]) Update(ctx context.Context, id string, form F) (F, error) {
	var zero F

	entity, err := e.load(ctx, id)
	if err != nil {
		return zero, err
	}

	e.proj.Merge(entity, form)
	e.base(entity).StampUpdated(e.now())

	if err := e.hooks.beforeUpdate(ctx, form, entity); err != nil {
		return zero, err
	}

	if err := e.store.Save(ctx, entity); err != nil {
		return zero, fmt.Errorf("saving %s %s: %w", e.entity, id, err)
	}

	e.logger.DebugContext(ctx, "entity updated", slog.String("id", id))
	return e.proj.ToTransfer(entity), nil
}

// Save persists an already loaded entity, running the save hooks. Services
// use it after changing hook-managed or read-only fields such as linked
// child ids.
func (e *Engine[F, T]) Save(ctx context.Context, entity *T) error {
	b := e.base(entity)
	b.StampUpdated(e.now())

	if err := e.hooks.beforeSave(ctx, entity); err != nil {
		return err
	}
	if err := e.store.Save(ctx, entity); err != nil {
		return fmt.Errorf("saving %s %s: %w", e.entity, b.ID, err)
	}
	return nil
}

// Delete removes the entity with the given id and returns its last state.
func (e *Engine[F, T]) Delete(ctx context.Context, id string) (F, error) {
	var zero F

	entity, err := e.load(ctx, id)
	if err != nil {
		return zero, err
	}
	snapshot := e.proj.ToTransfer(entity)

	if err := e.store.DeleteByID(ctx, id); err != nil {
		return zero, fmt.Errorf("deleting %s %s: %w", e.entity, id, err)
	}

	e.logger.DebugContext(ctx, "entity deleted", slog.String("id", id))
	return snapshot, nil
}

func (e *Engine[F, T]) load(ctx context.Context, id string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.RequiredField("id")
	}

	entity, found, err := e.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %s: %w", e.entity, id, err)
	}
	if !found {
		return nil, &domain.NotFoundError{Entity: e.entity, ID: id}
	}
	return entity, nil
}

// NaturalKey returns an ExistsFunc that looks the form up by the store's
// natural-key index. Forms with no natural-key value never match. It returns
// nil when the collection declares no natural key.
func NaturalKey[F, T any](store ports.Store[T], proj Projector[F, T]) ExistsFunc[F] {
	idx, ok := store.Collection().NaturalKey()
	if !ok {
		return nil
	}
	return func(ctx context.Context, form F) (string, bool, error) {
		values := idx.Values(proj.ToEntity(form))
		if !ports.Indexed(values) {
			return "", false, nil
		}
		_, found, err := store.FindOne(ctx, idx.Name, values...)
		if err != nil {
			return "", false, err
		}
		return strings.Join(values, "/"), found, nil
	}
}
