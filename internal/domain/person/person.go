// Package person defines the person entity, a shared-reference child reused
// across leads and prospects by LinkedIn profile URL.
package person

import (
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "person"

// Person is the persisted person record. LinkedInURL is its natural key.
type Person struct {
	domain.Base `bson:",inline"`

	FirstName   string `json:"first_name" bson:"first_name"`
	LastName    string `json:"last_name" bson:"last_name"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	LinkedInURL string `json:"linkedin_url" bson:"linkedin_url"`
}

// FullName joins the first and last name.
func (p *Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Form is the transfer form of a person.
type Form struct {
	ID          string    `json:"id,omitempty"`
	FirstName   string    `json:"first_name,omitempty" validate:"omitempty,max=100" create:"required"`
	LastName    string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email       string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Title       string    `json:"title,omitempty" validate:"omitempty,max=100"`
	LinkedInURL string    `json:"linkedin_url,omitempty" validate:"omitempty,url" create:"required"`
	Created     time.Time `json:"created,omitzero"`
	Updated     time.Time `json:"updated,omitzero"`
}

// Projector converts between Form and Person.
type Projector struct{}

// ToEntity projects every field of f onto a new Person.
func (Projector) ToEntity(f Form) *Person {
	return &Person{
		Base:        domain.Base{ID: f.ID},
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Phone:       f.Phone,
		Title:       f.Title,
		LinkedInURL: f.LinkedInURL,
	}
}

// ToTransfer projects every field of p onto a Form.
func (Projector) ToTransfer(p *Person) Form {
	return Form{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		Title:       p.Title,
		LinkedInURL: p.LinkedInURL,
		Created:     p.Created,
		Updated:     p.Updated,
	}
}

// Merge copies the fields present on f onto p.
func (Projector) Merge(p *Person, f Form) {
	domain.MergeString(&p.FirstName, f.FirstName)
	domain.MergeString(&p.LastName, f.LastName)
	domain.MergeString(&p.Email, f.Email)
	domain.MergeString(&p.Phone, f.Phone)
	domain.MergeString(&p.Title, f.Title)
	domain.MergeString(&p.LinkedInURL, f.LinkedInURL)
}

// RefToEntity projects an optional nested form.
func RefToEntity(f *Form) *Person {
	if f == nil {
		return nil
	}
	return Projector{}.ToEntity(*f)
}

// RefToTransfer projects an optional embedded person.
func RefToTransfer(p *Person) *Form {
	if p == nil {
		return nil
	}
	f := Projector{}.ToTransfer(p)
	return &f
}

// MergeRef applies an optional nested form to an embedded person, replacing
// the reference when the form names a different id, or a different LinkedIn
// URL without an id.
func MergeRef(dst **Person, f *Form) {
	if f == nil {
		return
	}
	if *dst == nil || switchesRef(*dst, f) {
		*dst = Projector{}.ToEntity(*f)
		return
	}
	Projector{}.Merge(*dst, *f)
}

func switchesRef(p *Person, f *Form) bool {
	if f.ID != "" {
		return f.ID != p.ID
	}
	return f.LinkedInURL != "" && f.LinkedInURL != p.LinkedInURL
}
