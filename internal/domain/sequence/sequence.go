// Package sequence defines outreach sequences and their steps. A sequence is
// shared by a set of users, at most one of whom is its OWNER.
package sequence

import (
	"cmp"
	"slices"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "sequence"

// Role is a user's permission on a sequence.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleEditor Role = "EDITOR"
)

// User is a sequence member.
type User struct {
	Role    Role      `json:"role" bson:"role"`
	Created time.Time `json:"created" bson:"created"`
	Updated time.Time `json:"updated" bson:"updated"`
}

// Sequence is the persisted sequence record. Users is keyed by user id.
type Sequence struct {
	domain.Base `bson:",inline"`

	AccountID   string          `json:"account_id" bson:"account_id"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Users       map[string]User `json:"users,omitempty" bson:"users,omitempty"`
	StepIDs     []string        `json:"step_ids,omitempty" bson:"step_ids,omitempty"`
}

// Owner returns the id of the OWNER user, if any.
func (s *Sequence) Owner() (string, bool) {
	for id, u := range s.Users {
		if u.Role == RoleOwner {
			return id, true
		}
	}
	return "", false
}

// HasStep reports whether id is already linked.
func (s *Sequence) HasStep(id string) bool {
	return slices.Contains(s.StepIDs, id)
}

// UserForm is the transfer form of a sequence member.
type UserForm struct {
	UserID  string    `json:"user_id" validate:"required"`
	Role    Role      `json:"role" validate:"required,oneof=OWNER EDITOR"`
	Created time.Time `json:"created,omitzero"`
	Updated time.Time `json:"updated,omitzero"`
}

// Form is the transfer form of a sequence.
type Form struct {
	ID          string     `json:"id,omitempty"`
	AccountID   string     `json:"account_id,omitempty" create:"required"`
	Name        string     `json:"name,omitempty" validate:"omitempty,max=200" create:"required"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	Users       []UserForm `json:"users,omitempty" validate:"omitempty,dive"`
	StepIDs     []string   `json:"step_ids,omitempty"`
	Created     time.Time  `json:"created,omitzero"`
	Updated     time.Time  `json:"updated,omitzero"`
}

// Projector converts between Form and Sequence. Merge never touches Users;
// membership changes go through Hooks.BeforeUpdate.
type Projector struct{}

// ToEntity projects f onto a new Sequence. Users are copied without
// timestamps.
func (Projector) ToEntity(f Form) *Sequence {
	s := &Sequence{
		Base:        domain.Base{ID: f.ID},
		AccountID:   f.AccountID,
		Name:        f.Name,
		Description: f.Description,
	}
	if len(f.Users) > 0 {
		s.Users = make(map[string]User, len(f.Users))
		for _, u := range f.Users {
			s.Users[u.UserID] = User{Role: u.Role}
		}
	}
	return s
}

// ToTransfer projects s onto a Form. Users are ordered by id.
func (Projector) ToTransfer(s *Sequence) Form {
	f := Form{
		ID:          s.ID,
		AccountID:   s.AccountID,
		Name:        s.Name,
		Description: s.Description,
		StepIDs:     append([]string(nil), s.StepIDs...),
		Created:     s.Created,
		Updated:     s.Updated,
	}
	for id, u := range s.Users {
		f.Users = append(f.Users, UserForm{UserID: id, Role: u.Role, Created: u.Created, Updated: u.Updated})
	}
	slices.SortFunc(f.Users, func(a, b UserForm) int { return cmp.Compare(a.UserID, b.UserID) })
	return f
}

// Merge copies the scalar fields present on f onto s.
func (Projector) Merge(s *Sequence, f Form) {
	domain.MergeString(&s.AccountID, f.AccountID)
	domain.MergeString(&s.Name, f.Name)
	domain.MergeString(&s.Description, f.Description)
}
