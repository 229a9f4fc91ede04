package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/fanout"
	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService.
type TodoService struct {
	*EntityService[todo.Form, todo.Todo]
	maxWorkers int
}

// NewTodoService creates a TodoService. maxWorkers bounds concurrent bulk
// updates.
func NewTodoService(todos *lifecycle.Engine[todo.Form, todo.Todo], maxWorkers int, logger *slog.Logger) *TodoService {
	return &TodoService{
		EntityService: NewEntityService(todos, logger),
		maxWorkers:    max(maxWorkers, 1),
	}
}

// BulkUpdate updates the todos concurrently using fanout with bounded
// concurrency. Each update succeeds or fails independently; failures are
// collected in the result rather than aborting the batch. Returns a hard
// error only for an empty request.
func (s *TodoService) BulkUpdate(ctx context.Context, updates []ports.TodoUpdate) (*ports.BulkUpdateResult, error) {
	s.logger.InfoContext(ctx, "bulk updating todos", slog.Int("count", len(updates)))

	if len(updates) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"updates": domain.KeyRequired}}
	}

	results := fanout.Run(ctx, s.maxWorkers, updates, func(ctx context.Context, u ports.TodoUpdate) (todo.Form, error) {
		return s.engine.Update(ctx, u.TodoID, u.Todo)
	})

	out := &ports.BulkUpdateResult{}
	for i, r := range results {
		if r.Err != nil {
			logFailure(ctx, s.logger, "BulkUpdate", r.Err, slog.String("todo_id", updates[i].TodoID))
			out.Errors = append(out.Errors, ports.BulkUpdateError{TodoID: updates[i].TodoID, Err: r.Err})
			continue
		}
		out.Updated = append(out.Updated, r.Value)
	}
	return out, nil
}
