// Package todo defines the todo entity: a unit of scheduled sales work owned
// by a lead or prospect. Todos are strong children of their owner and are
// never deduplicated by content.
package todo

import (
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "todo"

// Todo is the persisted todo record. CompletionDate is derived from Status by
// the lifecycle hooks and is never set from a form.
type Todo struct {
	domain.Base `bson:",inline"`

	OwnerID        string         `json:"owner_id" bson:"owner_id"`
	AccountID      string         `json:"account_id,omitempty" bson:"account_id,omitempty"`
	SequenceID     string         `json:"sequence_id,omitempty" bson:"sequence_id,omitempty"`
	StepID         string         `json:"step_id,omitempty" bson:"step_id,omitempty"`
	Scheduled      time.Time      `json:"scheduled" bson:"scheduled"`
	Channel        domain.Channel `json:"channel,omitempty" bson:"channel,omitempty"`
	Type           Type           `json:"type,omitempty" bson:"type,omitempty"`
	Status         Status         `json:"status" bson:"status"`
	Link           string         `json:"link,omitempty" bson:"link,omitempty"`
	Attachment     string         `json:"attachment,omitempty" bson:"attachment,omitempty"`
	Note           string         `json:"note,omitempty" bson:"note,omitempty"`
	Assignee       string         `json:"assignee,omitempty" bson:"assignee,omitempty"`
	CompletionDate *time.Time     `json:"completion_date,omitempty" bson:"completion_date,omitempty"`
	Manual         bool           `json:"manual" bson:"manual"`
}

// Form is the transfer form of a todo.
type Form struct {
	ID             string         `json:"id,omitempty"`
	OwnerID        string         `json:"owner_id,omitempty" create:"required"`
	AccountID      string         `json:"account_id,omitempty"`
	SequenceID     string         `json:"sequence_id,omitempty"`
	StepID         string         `json:"step_id,omitempty"`
	Scheduled      *time.Time     `json:"scheduled,omitempty" create:"required"`
	Channel        domain.Channel `json:"channel,omitempty" validate:"omitempty,oneof=EMAIL LINKEDIN PHONE SMS MEETING OTHER"`
	Type           Type           `json:"type,omitempty" validate:"omitempty,oneof=TASK FOLLOW_UP OUTREACH"`
	Status         Status         `json:"status,omitempty" validate:"omitempty,oneof=PENDING SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	Link           string         `json:"link,omitempty" validate:"omitempty,url"`
	Attachment     string         `json:"attachment,omitempty" validate:"omitempty,max=500"`
	Note           string         `json:"note,omitempty" validate:"omitempty,max=4000"`
	Assignee       string         `json:"assignee,omitempty"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	Manual         *bool          `json:"manual,omitempty"`
	Created        time.Time      `json:"created,omitzero"`
	Updated        time.Time      `json:"updated,omitzero"`
}

// IsManual reports whether the form is flagged as a user-authored entry.
func (f Form) IsManual() bool {
	return domain.Deref(f.Manual)
}

// Projector converts between Form and Todo.
type Projector struct{}

// ToEntity projects every writable field of f onto a new Todo.
func (Projector) ToEntity(f Form) *Todo {
	t := &Todo{
		Base:       domain.Base{ID: f.ID},
		OwnerID:    f.OwnerID,
		AccountID:  f.AccountID,
		SequenceID: f.SequenceID,
		StepID:     f.StepID,
		Channel:    f.Channel,
		Type:       f.Type,
		Status:     f.Status,
		Link:       f.Link,
		Attachment: f.Attachment,
		Note:       f.Note,
		Assignee:   f.Assignee,
		Manual:     domain.Deref(f.Manual),
	}
	if f.Scheduled != nil {
		t.Scheduled = f.Scheduled.UTC()
	}
	return t
}

// ToTransfer projects every field of t onto a Form.
func (Projector) ToTransfer(t *Todo) Form {
	f := Form{
		ID:         t.ID,
		OwnerID:    t.OwnerID,
		AccountID:  t.AccountID,
		SequenceID: t.SequenceID,
		StepID:     t.StepID,
		Scheduled:  domain.TimePtr(t.Scheduled),
		Channel:    t.Channel,
		Type:       t.Type,
		Status:     t.Status,
		Link:       t.Link,
		Attachment: t.Attachment,
		Note:       t.Note,
		Assignee:   t.Assignee,
		Manual:     domain.Ptr(t.Manual),
		Created:    t.Created,
		Updated:    t.Updated,
	}
	if t.CompletionDate != nil {
		f.CompletionDate = domain.Ptr(*t.CompletionDate)
	}
	return f
}

// Merge copies the fields present on f onto t. CompletionDate is ignored.
func (Projector) Merge(t *Todo, f Form) {
	domain.MergeString(&t.OwnerID, f.OwnerID)
	domain.MergeString(&t.AccountID, f.AccountID)
	domain.MergeString(&t.SequenceID, f.SequenceID)
	domain.MergeString(&t.StepID, f.StepID)
	domain.MergeTime(&t.Scheduled, f.Scheduled)
	domain.MergeString(&t.Channel, f.Channel)
	domain.MergeString(&t.Type, f.Type)
	domain.MergeString(&t.Status, f.Status)
	domain.MergeString(&t.Link, f.Link)
	domain.MergeString(&t.Attachment, f.Attachment)
	domain.MergeString(&t.Note, f.Note)
	domain.MergeString(&t.Assignee, f.Assignee)
	domain.MergeValue(&t.Manual, f.Manual)
}
