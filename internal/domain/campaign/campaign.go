// Package campaign defines the campaign entity. A campaign runs one sequence
// against a set of prospects inside an account.
package campaign

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "campaign"

// Status is the run state of a campaign and of each prospect within it.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusRunning    Status = "RUNNING"
	StatusPaused     Status = "PAUSED"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusRunning, StatusPaused, StatusCompleted:
		return true
	default:
		return false
	}
}

// Prospect links a prospect into a campaign.
type Prospect struct {
	ProspectID string    `json:"prospect_id" bson:"prospect_id"`
	Status     Status    `json:"status,omitempty" bson:"status,omitempty"`
	Added      time.Time `json:"added,omitzero" bson:"added,omitempty"`
}

// Campaign is the persisted campaign record. The pair (ComponentID, Name) is
// its natural key.
type Campaign struct {
	domain.Base `bson:",inline"`

	AccountID   string     `json:"account_id" bson:"account_id"`
	ComponentID string     `json:"component_id" bson:"component_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Status      Status     `json:"status" bson:"status"`
	StartDate   time.Time  `json:"start_date,omitzero" bson:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	SequenceID  string     `json:"sequence_id,omitempty" bson:"sequence_id,omitempty"`
	Prospects   []Prospect `json:"prospects,omitempty" bson:"prospects,omitempty"`
}

// HasProspect reports whether prospectID is already part of the campaign.
func (c *Campaign) HasProspect(prospectID string) bool {
	return slices.ContainsFunc(c.Prospects, func(p Prospect) bool {
		return p.ProspectID == prospectID
	})
}

// ProspectForm is the transfer form of a campaign prospect link.
type ProspectForm struct {
	ProspectID string     `json:"prospect_id" validate:"required"`
	Status     Status     `json:"status,omitempty" validate:"omitempty,oneof=NOT_STARTED RUNNING PAUSED COMPLETED"`
	Added      *time.Time `json:"added,omitempty"`
}

// Form is the transfer form of a campaign.
type Form struct {
	ID          string         `json:"id,omitempty"`
	AccountID   string         `json:"account_id,omitempty" create:"required"`
	ComponentID string         `json:"component_id,omitempty" create:"required"`
	Name        string         `json:"name,omitempty" validate:"omitempty,max=200" create:"required"`
	Description string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      Status         `json:"status,omitempty" validate:"omitempty,oneof=NOT_STARTED RUNNING PAUSED COMPLETED"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	SequenceID  string         `json:"sequence_id,omitempty"`
	Prospects   []ProspectForm `json:"prospects,omitempty" validate:"omitempty,dive"`
	Created     time.Time      `json:"created,omitzero"`
	Updated     time.Time      `json:"updated,omitzero"`
}

// Projector converts between Form and Campaign.
type Projector struct{}

// ToEntity projects every field of f onto a new Campaign.
func (Projector) ToEntity(f Form) *Campaign {
	c := &Campaign{
		Base:        domain.Base{ID: f.ID},
		AccountID:   f.AccountID,
		ComponentID: f.ComponentID,
		Name:        f.Name,
		Description: f.Description,
		Status:      f.Status,
		SequenceID:  f.SequenceID,
		Prospects:   prospectsToEntity(f.Prospects),
	}
	domain.MergeTime(&c.StartDate, f.StartDate)
	if f.EndDate != nil && !f.EndDate.IsZero() {
		c.EndDate = domain.Ptr(f.EndDate.UTC())
	}
	return c
}

// ToTransfer projects every field of c onto a Form.
func (Projector) ToTransfer(c *Campaign) Form {
	f := Form{
		ID:          c.ID,
		AccountID:   c.AccountID,
		ComponentID: c.ComponentID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		StartDate:   domain.TimePtr(c.StartDate),
		EndDate:     c.EndDate,
		SequenceID:  c.SequenceID,
		Created:     c.Created,
		Updated:     c.Updated,
	}
	for _, p := range c.Prospects {
		f.Prospects = append(f.Prospects, ProspectForm{
			ProspectID: p.ProspectID,
			Status:     p.Status,
			Added:      domain.TimePtr(p.Added),
		})
	}
	return f
}

// Merge copies the fields present on f onto c. A non-nil Prospects list
// replaces the stored one.
func (Projector) Merge(c *Campaign, f Form) {
	domain.MergeString(&c.AccountID, f.AccountID)
	domain.MergeString(&c.ComponentID, f.ComponentID)
	domain.MergeString(&c.Name, f.Name)
	domain.MergeString(&c.Description, f.Description)
	domain.MergeString(&c.Status, f.Status)
	domain.MergeTime(&c.StartDate, f.StartDate)
	if f.EndDate != nil && !f.EndDate.IsZero() {
		c.EndDate = domain.Ptr(f.EndDate.UTC())
	}
	domain.MergeString(&c.SequenceID, f.SequenceID)
	if f.Prospects != nil {
		c.Prospects = prospectsToEntity(f.Prospects)
	}
}

func prospectsToEntity(in []ProspectForm) []Prospect {
	if in == nil {
		return nil
	}
	out := make([]Prospect, 0, len(in))
	for _, p := range in {
		cp := Prospect{ProspectID: p.ProspectID, Status: p.Status}
		domain.MergeTime(&cp.Added, p.Added)
		out = append(out, cp)
	}
	return out
}
