package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// SharedResolver persists shared-reference children such as companies and
// people. An unidentified child is reused by natural key when a matching
// record exists and inserted otherwise.
type SharedResolver[T any] struct {
	store ports.Store[T]
	key   ports.Index[T]
	now   domain.Clock
}

// NewSharedResolver creates a SharedResolver. The store's collection must
// declare a unique index.
func NewSharedResolver[T any](store ports.Store[T], now domain.Clock) (*SharedResolver[T], error) {
	key, ok := store.Collection().NaturalKey()
	if !ok {
		return nil, fmt.Errorf("lifecycle: collection %s has no natural key", store.Collection().Name)
	}
	return &SharedResolver[T]{store: store, key: key, now: now.OrDefault()}, nil
}

// OnSave persists child and hands the canonical record to then.
//
// An unidentified child matching a stored record by natural key is discarded
// and then receives the stored record. An unidentified child with no match
// is inserted in place; then is not called and the caller reads the assigned
// id from child. An identified child is saved and passed to then.
func (r *SharedResolver[T]) OnSave(ctx context.Context, child *T, then func(*T)) error {
	if child == nil {
		return nil
	}
	coll := r.store.Collection()
	b := coll.Base(child)

	if b.HasID() {
		if b.Created.IsZero() {
			// Projected references carry no timestamps.
			stored, found, err := r.store.FindByID(ctx, b.ID)
			if err != nil {
				return fmt.Errorf("fetching %s %s: %w", coll.Name, b.ID, err)
			}
			if found {
				b.Created = coll.Base(stored).Created
			}
		}
		b.StampUpdated(r.now())
		if err := r.store.Save(ctx, child); err != nil {
			return fmt.Errorf("saving %s %s: %w", coll.Name, b.ID, err)
		}
		then(child)
		return nil
	}

	if values := r.key.Values(child); ports.Indexed(values) {
		existing, found, err := r.store.FindOne(ctx, r.key.Name, values...)
		if err != nil {
			return fmt.Errorf("looking up %s by %s: %w", coll.Name, r.key.Name, err)
		}
		if found {
			then(existing)
			return nil
		}
	}

	b.StampCreated(r.now())
	if err := r.store.Insert(ctx, child); err != nil {
		return fmt.Errorf("inserting %s: %w", coll.Name, err)
	}
	return nil
}

// Refresh hands the stored record of an identified child to then. It never
// writes; a nil, unidentified or unknown child is left as it is.
func (r *SharedResolver[T]) Refresh(ctx context.Context, child *T, then func(*T)) error {
	if child == nil {
		return nil
	}
	coll := r.store.Collection()
	b := coll.Base(child)
	if !b.HasID() {
		return nil
	}
	stored, found, err := r.store.FindByID(ctx, b.ID)
	if err != nil {
		return fmt.Errorf("fetching %s %s: %w", coll.Name, b.ID, err)
	}
	if found {
		then(stored)
	}
	return nil
}

// StrongResolver persists strong children such as todos, interactions and
// sequence steps. Strong children are never deduplicated by content.
type StrongResolver[F, T any] struct {
	engine *Engine[F, T]
}

// NewStrongResolver creates a StrongResolver that stores children through the
// engine's store and runs the engine's insert and save hooks.
func NewStrongResolver[F, T any](engine *Engine[F, T]) *StrongResolver[F, T] {
	return &StrongResolver[F, T]{engine: engine}
}

// OnSave inserts an unidentified child and passes it to then. An identified
// child is looked up by id and passed to then when found; a stale id is
// skipped without error.
func (r *StrongResolver[F, T]) OnSave(ctx context.Context, child *T, then func(*T)) error {
	if child == nil {
		return nil
	}
	e := r.engine
	b := e.base(child)

	if b.HasID() {
		stored, found, err := e.store.FindByID(ctx, b.ID)
		if err != nil {
			return fmt.Errorf("fetching %s %s: %w", e.entity, b.ID, err)
		}
		if !found {
			e.logger.DebugContext(ctx, "linked child not found, skipping", slog.String("id", b.ID))
			return nil
		}
		then(stored)
		return nil
	}

	b.StampCreated(e.now())
	if err := e.hooks.beforeInsert(ctx, e.proj.ToTransfer(child), child); err != nil {
		return err
	}
	if err := e.store.Insert(ctx, child); err != nil {
		return fmt.Errorf("inserting %s: %w", e.entity, err)
	}
	then(child)
	return nil
}
