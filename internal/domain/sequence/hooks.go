package sequence

import (
	"context"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// KeyMultipleOwners is the message key for a create request naming more than
// one OWNER.
const KeyMultipleOwners = "sequence.owner.multiple"

// Hooks maintains sequence membership: user timestamps and the single-OWNER
// invariant.
type Hooks struct {
	Now domain.Clock
}

// BeforeInsert stamps every user and rejects more than one OWNER.
func (h Hooks) BeforeInsert(_ context.Context, _ Form, s *Sequence) error {
	now := h.Now.OrDefault()()
	owners := 0
	for id, u := range s.Users {
		if u.Role == RoleOwner {
			owners++
		}
		u.Created, u.Updated = now, now
		s.Users[id] = u
	}
	if owners > 1 {
		return domain.NewRuleError(KeyMultipleOwners, owners)
	}
	return nil
}

// BeforeUpdate reconciles the users on f into s. Known users get their role
// replaced in place. Unknown users are added with fresh timestamps. Whenever
// a user becomes OWNER the previous OWNER is demoted to EDITOR first.
func (h Hooks) BeforeUpdate(_ context.Context, f Form, s *Sequence) error {
	if len(f.Users) == 0 {
		return nil
	}
	now := h.Now.OrDefault()()
	if s.Users == nil {
		s.Users = make(map[string]User, len(f.Users))
	}

	for _, in := range f.Users {
		if in.Role == RoleOwner {
			demoteOwner(s, in.UserID, now)
		}
		if u, ok := s.Users[in.UserID]; ok {
			u.Role = in.Role
			u.Updated = now
			s.Users[in.UserID] = u
			continue
		}
		s.Users[in.UserID] = User{Role: in.Role, Created: now, Updated: now}
	}
	return nil
}

func demoteOwner(s *Sequence, except string, now time.Time) {
	for id, u := range s.Users {
		if id != except && u.Role == RoleOwner {
			u.Role = RoleEditor
			u.Updated = now
			s.Users[id] = u
		}
	}
}
