package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Compile-time check that LeadService implements ports.LeadService.
var _ ports.LeadService = (*LeadService)(nil)

// LeadService implements ports.LeadService.
type LeadService struct {
	*EntityService[lead.Form, lead.Lead]
	todos      *lifecycle.Engine[todo.Form, todo.Todo]
	maxWorkers int
}

// NewLeadService creates a LeadService. maxWorkers bounds concurrent todo
// loads.
func NewLeadService(
	leads *lifecycle.Engine[lead.Form, lead.Lead],
	todos *lifecycle.Engine[todo.Form, todo.Todo],
	maxWorkers int,
	logger *slog.Logger,
) *LeadService {
	return &LeadService{
		EntityService: NewEntityService(leads, logger),
		todos:         todos,
		maxWorkers:    maxWorkers,
	}
}

// ListTodos returns the todos linked to the lead, in schedule order.
func (s *LeadService) ListTodos(ctx context.Context, leadID string) ([]todo.Form, error) {
	l, err := s.engine.Load(ctx, leadID)
	if err != nil {
		s.logFailure(ctx, "ListTodos", leadID, err)
		return nil, err
	}

	todos, err := linkedTodos(ctx, s.todos, s.maxWorkers, l.TodoIDs)
	if err != nil {
		s.logFailure(ctx, "ListTodos", leadID, err)
		return nil, err
	}
	return todoForms(todos), nil
}
