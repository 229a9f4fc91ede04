package lifecycle

import (
	"context"
	"fmt"
)

// InsertHook runs on create, after the timestamps are stamped and before the
// record is inserted.
type InsertHook[F, T any] interface {
	BeforeInsert(ctx context.Context, form F, entity *T) error
}

// UpdateHook runs on update, after the form has been merged into the stored
// record.
type UpdateHook[F, T any] interface {
	BeforeUpdate(ctx context.Context, form F, entity *T) error
}

// SaveHook runs on every persist, after the insert or update hooks.
type SaveHook[T any] interface {
	BeforeSave(ctx context.Context, entity *T) error
}

// hookSet holds the hooks of one engine, split by event and kept in
// registration order.
type hookSet[F, T any] struct {
	insert []InsertHook[F, T]
	update []UpdateHook[F, T]
	save   []SaveHook[T]
}

// newHookSet sorts hooks by the events they implement. A value that
// implements none of them is a wiring mistake and is rejected.
func newHookSet[F, T any](hooks []any) (hookSet[F, T], error) {
	var hs hookSet[F, T]
	for _, h := range hooks {
		matched := false
		if ih, ok := h.(InsertHook[F, T]); ok {
			hs.insert = append(hs.insert, ih)
			matched = true
		}
		if uh, ok := h.(UpdateHook[F, T]); ok {
			hs.update = append(hs.update, uh)
			matched = true
		}
		if sh, ok := h.(SaveHook[T]); ok {
			hs.save = append(hs.save, sh)
			matched = true
		}
		if !matched {
			return hookSet[F, T]{}, fmt.Errorf("lifecycle: %T implements no lifecycle hook", h)
		}
	}
	return hs, nil
}

func (hs hookSet[F, T]) beforeInsert(ctx context.Context, form F, entity *T) error {
	for _, h := range hs.insert {
		if err := h.BeforeInsert(ctx, form, entity); err != nil {
			return err
		}
	}
	return hs.beforeSave(ctx, entity)
}

func (hs hookSet[F, T]) beforeUpdate(ctx context.Context, form F, entity *T) error {
	for _, h := range hs.update {
		if err := h.BeforeUpdate(ctx, form, entity); err != nil {
			return err
		}
	}
	return hs.beforeSave(ctx, entity)
}

func (hs hookSet[F, T]) beforeSave(ctx context.Context, entity *T) error {
	for _, h := range hs.save {
		if err := h.BeforeSave(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}
