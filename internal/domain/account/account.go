// Package account defines the sales account that owns leads, prospects,
// campaigns and sequences. Its collaborators are the users who work the
// account; the first collaborator is the default assignee for scheduled
// outreach.
package account

import (
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "account"

// Account is the persisted account record.
type Account struct {
	domain.Base `bson:",inline"`

	Name          string   `json:"name" bson:"name"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
	OwnerID       string   `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	Collaborators []string `json:"collaborators,omitempty" bson:"collaborators,omitempty"`
}

// DefaultAssignee returns the first collaborator, if any.
func (a *Account) DefaultAssignee() (string, bool) {
	for _, c := range a.Collaborators {
		if c != "" {
			return c, true
		}
	}
	return "", false
}

// Form is the transfer form of an account.
type Form struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name,omitempty" validate:"omitempty,max=200" create:"required"`
	Description   string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	OwnerID       string    `json:"owner_id,omitempty"`
	Collaborators []string  `json:"collaborators,omitempty" validate:"omitempty,dive,required"`
	Created       time.Time `json:"created,omitzero"`
	Updated       time.Time `json:"updated,omitzero"`
}

// Projector converts between Form and Account.
type Projector struct{}

// ToEntity projects every field of f onto a new Account.
func (Projector) ToEntity(f Form) *Account {
	return &Account{
		Base:          domain.Base{ID: f.ID},
		Name:          f.Name,
		Description:   f.Description,
		OwnerID:       f.OwnerID,
		Collaborators: append([]string(nil), f.Collaborators...),
	}
}

// ToTransfer projects every field of a onto a Form.
func (Projector) ToTransfer(a *Account) Form {
	return Form{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		OwnerID:       a.OwnerID,
		Collaborators: append([]string(nil), a.Collaborators...),
		Created:       a.Created,
		Updated:       a.Updated,
	}
}

// Merge copies the fields present on f onto a.
func (Projector) Merge(a *Account, f Form) {
	domain.MergeString(&a.Name, f.Name)
	domain.MergeString(&a.Description, f.Description)
	domain.MergeString(&a.OwnerID, f.OwnerID)
	domain.MergeSlice(&a.Collaborators, f.Collaborators)
}
