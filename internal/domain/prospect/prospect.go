// Package prospect defines the prospect entity: a qualified contact worked
// through campaigns and sequences. Prospects own their todos and recorded
// interactions.
package prospect

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "prospect"

// Prospect is the persisted prospect record. LinkedInURL is its natural key.
type Prospect struct {
	domain.Base `bson:",inline"`

	AccountID      string             `json:"account_id" bson:"account_id"`
	LinkedInURL    string             `json:"linkedin_url" bson:"linkedin_url"`
	Name           string             `json:"name,omitempty" bson:"name,omitempty"`
	Headline       string             `json:"headline,omitempty" bson:"headline,omitempty"`
	Personality    domain.Personality `json:"personality,omitempty" bson:"personality,omitempty"`
	Person         *person.Person     `json:"person,omitempty" bson:"person,omitempty"`
	Company        *company.Company   `json:"company,omitempty" bson:"company,omitempty"`
	TodoIDs        []string           `json:"todo_ids,omitempty" bson:"todo_ids,omitempty"`
	InteractionIDs []string           `json:"interaction_ids,omitempty" bson:"interaction_ids,omitempty"`
}

// HasInteraction reports whether id is already linked.
func (p *Prospect) HasInteraction(id string) bool {
	return slices.Contains(p.InteractionIDs, id)
}

// Form is the transfer form of a prospect.
type Form struct {
	ID             string             `json:"id,omitempty"`
	AccountID      string             `json:"account_id,omitempty" create:"required"`
	LinkedInURL    string             `json:"linkedin_url,omitempty" validate:"omitempty,url" create:"required"`
	Name           string             `json:"name,omitempty" validate:"omitempty,max=200"`
	Headline       string             `json:"headline,omitempty" validate:"omitempty,max=300"`
	Personality    domain.Personality `json:"personality,omitempty" validate:"omitempty,oneof=DOMINANT INFLUENTIAL STEADY CONSCIENTIOUS"`
	Person         *person.Form       `json:"person,omitempty"`
	Company        *company.Form      `json:"company,omitempty"`
	TodoIDs        []string           `json:"todo_ids,omitempty"`
	InteractionIDs []string           `json:"interaction_ids,omitempty"`
	Created        time.Time          `json:"created,omitzero"`
	Updated        time.Time          `json:"updated,omitzero"`
}

// Projector converts between Form and Prospect. Linked child ids are
// read-only on the form.
type Projector struct{}

// ToEntity projects every writable field of f onto a new Prospect.
func (Projector) ToEntity(f Form) *Prospect {
	return &Prospect{
		Base:        domain.Base{ID: f.ID},
		AccountID:   f.AccountID,
		LinkedInURL: f.LinkedInURL,
		Name:        f.Name,
		Headline:    f.Headline,
		Personality: f.Personality,
		Person:      person.RefToEntity(f.Person),
		Company:     company.RefToEntity(f.Company),
	}
}

// ToTransfer projects every field of p onto a Form.
func (Projector) ToTransfer(p *Prospect) Form {
	return Form{
		ID:             p.ID,
		AccountID:      p.AccountID,
		LinkedInURL:    p.LinkedInURL,
		Name:           p.Name,
		Headline:       p.Headline,
		Personality:    p.Personality,
		Person:         person.RefToTransfer(p.Person),
		Company:        company.RefToTransfer(p.Company),
		TodoIDs:        append([]string(nil), p.TodoIDs...),
		InteractionIDs: append([]string(nil), p.InteractionIDs...),
		Created:        p.Created,
		Updated:        p.Updated,
	}
}

// Merge copies the fields present on f onto p.
func (Projector) Merge(p *Prospect, f Form) {
	domain.MergeString(&p.AccountID, f.AccountID)
	domain.MergeString(&p.LinkedInURL, f.LinkedInURL)
	domain.MergeString(&p.Name, f.Name)
	domain.MergeString(&p.Headline, f.Headline)
	domain.MergeString(&p.Personality, f.Personality)
	person.MergeRef(&p.Person, f.Person)
	company.MergeRef(&p.Company, f.Company)
}
