package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain/campaign"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
)

// EntityService defines the CRUD service port shared by every entity.
// Implemented by the application layer; called by inbound adapters (handlers).
// F is the entity's transfer form.
type EntityService[F any] interface {
	// Create stores a new entity and returns it with server-assigned fields
	// (ID, timestamps). Returns a domain.DuplicateError when an entity with
	// the same natural key exists.
	Create(ctx context.Context, form F) (F, error)

	// FindByID returns a single entity.
	// Returns a domain.NotFoundError if the entity does not exist.
	FindByID(ctx context.Context, id string) (F, error)

	// FindAll returns every entity. There is no pagination.
	FindAll(ctx context.Context) ([]F, error)

	// Update merges the fields present on form into the stored entity.
	// Returns a domain.NotFoundError if the entity does not exist.
	Update(ctx context.Context, id string, form F) (F, error)

	// Delete removes an entity and returns its last state.
	// Returns a domain.NotFoundError if the entity does not exist.
	Delete(ctx context.Context, id string) (F, error)
}

// LeadService adds todo listing to lead CRUD.
type LeadService interface {
	EntityService[lead.Form]

	// ListTodos returns the todos linked to the lead, in schedule order.
	ListTodos(ctx context.Context, leadID string) ([]todo.Form, error)
}

// ProspectService adds interaction and todo management to prospect CRUD.
type ProspectService interface {
	EntityService[prospect.Form]

	// AddInteraction records an interaction and links it to the prospect.
	// An interaction that is already linked fails with a domain.RuleError.
	AddInteraction(ctx context.Context, prospectID string, form interaction.Form) (interaction.Form, error)

	// ListInteractions returns the prospect's interactions, newest first.
	ListInteractions(ctx context.Context, prospectID string) ([]interaction.Form, error)

	// ListTodos returns the todos linked to the prospect, in schedule order.
	ListTodos(ctx context.Context, prospectID string) ([]todo.Form, error)
}

// SequenceService adds step management to sequence CRUD.
type SequenceService interface {
	EntityService[sequence.Form]

	// AddStep stores a step and links it to the sequence.
	AddStep(ctx context.Context, sequenceID string, form sequence.StepForm) (sequence.StepForm, error)

	// ListSteps returns the sequence's steps ordered by position.
	ListSteps(ctx context.Context, sequenceID string) ([]sequence.StepForm, error)
}

// CampaignService adds prospect enrollment to campaign CRUD.
type CampaignService interface {
	EntityService[campaign.Form]

	// AddProspect enrolls a prospect in the campaign and returns the updated
	// campaign. A prospect already enrolled fails with a domain.RuleError.
	AddProspect(ctx context.Context, campaignID string, form campaign.ProspectForm) (campaign.Form, error)
}

// TodoService adds bulk updates to todo CRUD.
type TodoService interface {
	EntityService[todo.Form]

	// BulkUpdate updates multiple todos concurrently. Uses partial success
	// semantics: each update succeeds or fails independently. Individual
	// failures are collected in BulkUpdateResult.Errors.
	BulkUpdate(ctx context.Context, updates []TodoUpdate) (*BulkUpdateResult, error)
}

// TodoUpdate pairs a todo ID with the fields to change.
type TodoUpdate struct {
	TodoID string
	Todo   todo.Form
}

// BulkUpdateError records a single failed todo update within a bulk operation.
type BulkUpdateError struct {
	TodoID string
	Err    error
}

// BulkUpdateResult holds the outcomes of a bulk update operation.
// Updated contains successfully updated todos; Errors contains per-item failures.
type BulkUpdateResult struct {
	Updated []todo.Form
	Errors  []BulkUpdateError
}

// TargetKind names the kind of record a schedule is built for.
type TargetKind string

const (
	TargetLead     TargetKind = "lead"
	TargetProspect TargetKind = "prospect"
)

// ScheduleRequest asks for a sequence to be expanded for one target.
type ScheduleRequest struct {
	TargetKind TargetKind
	TargetID   string
	SequenceID string
	AssigneeID string
}

// ScheduleService turns sequences into scheduled todos.
type ScheduleService interface {
	// Preview expands the sequence's steps that match the target's
	// personality into todo forms. Nothing is persisted.
	Preview(ctx context.Context, req ScheduleRequest) ([]todo.Form, error)

	// Commit stores the todos and links them to the target. A non-manual
	// todo sharing its scheduled time with another todo of the same target
	// fails the whole batch with a domain.RuleError.
	Commit(ctx context.Context, kind TargetKind, targetID string, todos []todo.Form) ([]todo.Form, error)
}

// ReportService renders account reports.
type ReportService interface {
	// AccountReport renders the account's pipeline as a PDF document.
	AccountReport(ctx context.Context, accountID, locale string) ([]byte, error)
}
