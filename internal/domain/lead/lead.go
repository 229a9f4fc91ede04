// Package lead defines the lead entity: an early-stage contact tied to an
// account, referencing a shared person and company.
package lead

import (
	"context"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "lead"

// Status is the qualification state of a lead.
type Status string

const (
	StatusNew          Status = "NEW"
	StatusContacted    Status = "CONTACTED"
	StatusQualified    Status = "QUALIFIED"
	StatusDisqualified Status = "DISQUALIFIED"
)

// Lead is the persisted lead record. Person and Company are embedded copies
// of shared records; the cascade resolvers keep them pointing at the
// canonical stored record.
type Lead struct {
	domain.Base `bson:",inline"`

	AccountID   string             `json:"account_id" bson:"account_id"`
	Person      *person.Person     `json:"person,omitempty" bson:"person,omitempty"`
	Company     *company.Company   `json:"company,omitempty" bson:"company,omitempty"`
	Personality domain.Personality `json:"personality,omitempty" bson:"personality,omitempty"`
	Status      Status             `json:"status" bson:"status"`
	Source      string             `json:"source,omitempty" bson:"source,omitempty"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	TodoIDs     []string           `json:"todo_ids,omitempty" bson:"todo_ids,omitempty"`
}

// Form is the transfer form of a lead.
type Form struct {
	ID          string             `json:"id,omitempty"`
	AccountID   string             `json:"account_id,omitempty" create:"required"`
	Person      *person.Form       `json:"person,omitempty"`
	Company     *company.Form      `json:"company,omitempty"`
	Personality domain.Personality `json:"personality,omitempty" validate:"omitempty,oneof=DOMINANT INFLUENTIAL STEADY CONSCIENTIOUS"`
	Status      Status             `json:"status,omitempty" validate:"omitempty,oneof=NEW CONTACTED QUALIFIED DISQUALIFIED"`
	Source      string             `json:"source,omitempty" validate:"omitempty,max=100"`
	Notes       string             `json:"notes,omitempty" validate:"omitempty,max=4000"`
	TodoIDs     []string           `json:"todo_ids,omitempty"`
	Created     time.Time          `json:"created,omitzero"`
	Updated     time.Time          `json:"updated,omitzero"`
}

// Projector converts between Form and Lead. TodoIDs are read-only on the
// form; they change only through the todo linking operations.
type Projector struct{}

// ToEntity projects every writable field of f onto a new Lead.
func (Projector) ToEntity(f Form) *Lead {
	return &Lead{
		Base:        domain.Base{ID: f.ID},
		AccountID:   f.AccountID,
		Person:      person.RefToEntity(f.Person),
		Company:     company.RefToEntity(f.Company),
		Personality: f.Personality,
		Status:      f.Status,
		Source:      f.Source,
		Notes:       f.Notes,
	}
}

// ToTransfer projects every field of l onto a Form.
func (Projector) ToTransfer(l *Lead) Form {
	return Form{
		ID:          l.ID,
		AccountID:   l.AccountID,
		Person:      person.RefToTransfer(l.Person),
		Company:     company.RefToTransfer(l.Company),
		Personality: l.Personality,
		Status:      l.Status,
		Source:      l.Source,
		Notes:       l.Notes,
		TodoIDs:     append([]string(nil), l.TodoIDs...),
		Created:     l.Created,
		Updated:     l.Updated,
	}
}

// Merge copies the fields present on f onto l.
func (Projector) Merge(l *Lead, f Form) {
	domain.MergeString(&l.AccountID, f.AccountID)
	person.MergeRef(&l.Person, f.Person)
	company.MergeRef(&l.Company, f.Company)
	domain.MergeString(&l.Personality, f.Personality)
	domain.MergeString(&l.Status, f.Status)
	domain.MergeString(&l.Source, f.Source)
	domain.MergeString(&l.Notes, f.Notes)
}

// Hooks defaults the qualification state of new leads.
type Hooks struct{}

// BeforeInsert defaults an absent status to NEW.
func (Hooks) BeforeInsert(_ context.Context, _ Form, l *Lead) error {
	if l.Status == "" {
		l.Status = StatusNew
	}
	return nil
}
