// Package app provides application services that orchestrate use cases by
// coordinating the lifecycle engines, the domain hooks and the outbound ports.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityService implements ports.EntityService over a lifecycle engine. It
// adds structured logging and nothing else; the engine owns the semantics.
type EntityService[F, T any] struct {
	engine *lifecycle.Engine[F, T]
	logger *slog.Logger
}

// NewEntityService creates an EntityService for the engine's entity.
func NewEntityService[F, T any](engine *lifecycle.Engine[F, T], logger *slog.Logger) *EntityService[F, T] {
	return &EntityService[F, T]{
		engine: engine,
		logger: logger.With(slog.String("entity", engine.Entity())),
	}
}

// Engine returns the wrapped engine.
func (s *EntityService[F, T]) Engine() *lifecycle.Engine[F, T] { return s.engine }

// Create stores a new entity.
func (s *EntityService[F, T]) Create(ctx context.Context, form F) (F, error) {
	s.logger.InfoContext(ctx, "creating entity")

	out, err := s.engine.Create(ctx, form)
	if err != nil {
		s.logFailure(ctx, "Create", "", err)
		return out, err
	}
	return out, nil
}

// FindByID returns a single entity.
func (s *EntityService[F, T]) FindByID(ctx context.Context, id string) (F, error) {
	out, err := s.engine.FindByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, "FindByID", id, err)
		return out, err
	}
	return out, nil
}

// FindAll returns every entity.
func (s *EntityService[F, T]) FindAll(ctx context.Context) ([]F, error) {
	out, err := s.engine.FindAll(ctx)
	if err != nil {
		s.logFailure(ctx, "FindAll", "", err)
		return nil, err
	}
	return out, nil
}

// Update merges form into the stored entity.
func (s *EntityService[F, T]) Update(ctx context.Context, id string, form F) (F, error) {
	s.logger.InfoContext(ctx, "updating entity", slog.String("id", id))

	out, err := s.engine.Update(ctx, id, form)
	if err != nil {
		s.logFailure(ctx, "Update", id, err)
		return out, err
	}
	return out, nil
}

// Delete removes an entity and returns its last state.
func (s *EntityService[F, T]) Delete(ctx context.Context, id string) (F, error) {
	s.logger.InfoContext(ctx, "deleting entity", slog.String("id", id))

	out, err := s.engine.Delete(ctx, id)
	if err != nil {
		s.logFailure(ctx, "Delete", id, err)
		return out, err
	}
	return out, nil
}

func (s *EntityService[F, T]) logFailure(ctx context.Context, op, id string, err error) {
	logFailure(ctx, s.logger, op, err, slog.String("id", id))
}

// logFailure logs err at warn when it is a client-caused domain error and at
// error otherwise.
func logFailure(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if isDomainError(err) {
		level = slog.LevelWarn
	}
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))
	logger.Log(ctx, level, "operation failed", args...)
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}
