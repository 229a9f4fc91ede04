package dto

import (
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// ScheduleRequest is the body of a schedule preview. Without an assignee the
// todos go to a collaborator of the target's account.
type ScheduleRequest struct {
	SequenceID string `json:"sequence_id" validate:"required"`
	AssigneeID string `json:"assignee_id,omitempty"`
}

// ScheduleCommitRequest carries previewed todos, possibly edited, back for
// storage.
type ScheduleCommitRequest struct {
	Todos []todo.Form `json:"todos" validate:"required,min=1,dive"`
}

// SequenceUsersRequest replaces the membership of a sequence.
type SequenceUsersRequest struct {
	Users []sequence.UserForm `json:"users" validate:"required,min=1,dive"`
}

// BulkUpdateTodosRequest is the body of PATCH /todos. At most 100 updates
// are accepted per request.
type BulkUpdateTodosRequest struct {
	Updates []TodoUpdateItem `json:"updates" validate:"required,min=1,max=100,dive"`
}

// TodoUpdateItem is one entry of a bulk update: the todo id plus the fields
// to change.
type TodoUpdateItem struct {
	ID   string    `json:"id" validate:"required"`
	Todo todo.Form `json:"todo"`
}

// ToUpdates converts the request to the service input.
func (r *BulkUpdateTodosRequest) ToUpdates() []ports.TodoUpdate {
	updates := make([]ports.TodoUpdate, len(r.Updates))
	for i, u := range r.Updates {
		updates[i] = ports.TodoUpdate{TodoID: u.ID, Todo: u.Todo}
	}
	return updates
}

// ToPorts converts the request to a schedule request for one target.
func (r *ScheduleRequest) ToPorts(kind ports.TargetKind, targetID string) ports.ScheduleRequest {
	return ports.ScheduleRequest{
		TargetKind: kind,
		TargetID:   targetID,
		SequenceID: r.SequenceID,
		AssigneeID: r.AssigneeID,
	}
}
