// Package company defines the company entity. Companies are shared-reference
// children: leads and prospects point at them, and a company is reused by
// name instead of being duplicated per owner.
package company

import (
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "company"

// Company is the persisted company record. Name is its natural key.
type Company struct {
	domain.Base `bson:",inline"`

	Name      string `json:"name" bson:"name"`
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
	Industry  string `json:"industry,omitempty" bson:"industry,omitempty"`
	Headcount int    `json:"headcount,omitempty" bson:"headcount,omitempty"`
	Location  string `json:"location,omitempty" bson:"location,omitempty"`
}

// Form is the transfer form of a company.
type Form struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty" validate:"omitempty,max=200" create:"required"`
	Website   string    `json:"website,omitempty" validate:"omitempty,url"`
	Industry  string    `json:"industry,omitempty" validate:"omitempty,max=100"`
	Headcount *int      `json:"headcount,omitempty" validate:"omitempty,min=0"`
	Location  string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Created   time.Time `json:"created,omitzero"`
	Updated   time.Time `json:"updated,omitzero"`
}

// Projector converts between Form and Company.
type Projector struct{}

// ToEntity projects every field of f onto a new Company.
func (Projector) ToEntity(f Form) *Company {
	return &Company{
		Base:      domain.Base{ID: f.ID},
		Name:      f.Name,
		Website:   f.Website,
		Industry:  f.Industry,
		Headcount: domain.Deref(f.Headcount),
		Location:  f.Location,
	}
}

// ToTransfer projects every field of c onto a Form.
func (Projector) ToTransfer(c *Company) Form {
	return Form{
		ID:        c.ID,
		Name:      c.Name,
		Website:   c.Website,
		Industry:  c.Industry,
		Headcount: domain.Ptr(c.Headcount),
		Location:  c.Location,
		Created:   c.Created,
		Updated:   c.Updated,
	}
}

// Merge copies the fields present on f onto c.
func (Projector) Merge(c *Company, f Form) {
	domain.MergeString(&c.Name, f.Name)
	domain.MergeString(&c.Website, f.Website)
	domain.MergeString(&c.Industry, f.Industry)
	domain.MergeValue(&c.Headcount, f.Headcount)
	domain.MergeString(&c.Location, f.Location)
}

// RefToEntity projects an optional nested form.
func RefToEntity(f *Form) *Company {
	if f == nil {
		return nil
	}
	return Projector{}.ToEntity(*f)
}

// RefToTransfer projects an optional embedded company.
func RefToTransfer(c *Company) *Form {
	if c == nil {
		return nil
	}
	f := Projector{}.ToTransfer(c)
	return &f
}

// MergeRef applies an optional nested form to an embedded company. A form
// naming a different company, by id or by name when it carries no id,
// replaces the reference; otherwise the form is merged into the embedded
// record.
func MergeRef(dst **Company, f *Form) {
	if f == nil {
		return
	}
	if *dst == nil || switchesRef(*dst, f) {
		*dst = Projector{}.ToEntity(*f)
		return
	}
	Projector{}.Merge(*dst, *f)
}

func switchesRef(c *Company, f *Form) bool {
	if f.ID != "" {
		return f.ID != c.ID
	}
	return f.Name != "" && f.Name != c.Name
}
