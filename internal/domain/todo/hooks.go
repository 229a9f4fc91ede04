package todo

import (
	"context"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// Hooks enforces the todo invariants: a default status on insert and a
// completion date that always follows the status.
type Hooks struct {
	Now domain.Clock
}

// BeforeInsert defaults an absent status to PENDING.
func (h Hooks) BeforeInsert(_ context.Context, _ Form, t *Todo) error {
	if t.Status == "" {
		t.Status = StatusPending
	}
	return nil
}

// BeforeSave stamps CompletionDate when the todo becomes COMPLETED and clears
// it for every other status.
func (h Hooks) BeforeSave(_ context.Context, t *Todo) error {
	if t.Status != StatusCompleted {
		t.CompletionDate = nil
		return nil
	}
	if t.CompletionDate == nil {
		now := h.Now.OrDefault()()
		t.CompletionDate = &now
	}
	return nil
}
