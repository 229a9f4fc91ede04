// Package interaction defines a recorded touchpoint (email sent, call held,
// message received) with a prospect. Interactions are strong children of the
// prospect that owns them.
package interaction

import (
	"context"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// EntityName is the entity type used in errors and logs.
const EntityName = "interaction"

// Direction tells whether the prospect or the seller initiated the contact.
type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

// Interaction is the persisted interaction record.
type Interaction struct {
	domain.Base `bson:",inline"`

	OwnerID   string         `json:"owner_id" bson:"owner_id"`
	Channel   domain.Channel `json:"channel" bson:"channel"`
	Direction Direction      `json:"direction" bson:"direction"`
	Occurred  time.Time      `json:"occurred" bson:"occurred"`
	Summary   string         `json:"summary,omitempty" bson:"summary,omitempty"`
	Content   string         `json:"content,omitempty" bson:"content,omitempty"`
}

// Form is the transfer form of an interaction.
type Form struct {
	ID        string         `json:"id,omitempty"`
	OwnerID   string         `json:"owner_id,omitempty"`
	Channel   domain.Channel `json:"channel,omitempty" validate:"omitempty,oneof=EMAIL LINKEDIN PHONE SMS MEETING OTHER" create:"required"`
	Direction Direction      `json:"direction,omitempty" validate:"omitempty,oneof=INBOUND OUTBOUND"`
	Occurred  *time.Time     `json:"occurred,omitempty"`
	Summary   string         `json:"summary,omitempty" validate:"omitempty,max=500"`
	Content   string         `json:"content,omitempty" validate:"omitempty,max=20000"`
	Created   time.Time      `json:"created,omitzero"`
	Updated   time.Time      `json:"updated,omitzero"`
}

// Projector converts between Form and Interaction.
type Projector struct{}

// ToEntity projects every field of f onto a new Interaction.
func (Projector) ToEntity(f Form) *Interaction {
	i := &Interaction{
		Base:      domain.Base{ID: f.ID},
		OwnerID:   f.OwnerID,
		Channel:   f.Channel,
		Direction: f.Direction,
		Summary:   f.Summary,
		Content:   f.Content,
	}
	if f.Occurred != nil {
		i.Occurred = f.Occurred.UTC()
	}
	return i
}

// ToTransfer projects every field of i onto a Form.
func (Projector) ToTransfer(i *Interaction) Form {
	return Form{
		ID:        i.ID,
		OwnerID:   i.OwnerID,
		Channel:   i.Channel,
		Direction: i.Direction,
		Occurred:  domain.TimePtr(i.Occurred),
		Summary:   i.Summary,
		Content:   i.Content,
		Created:   i.Created,
		Updated:   i.Updated,
	}
}

// Merge copies the fields present on f onto i.
func (Projector) Merge(i *Interaction, f Form) {
	domain.MergeString(&i.OwnerID, f.OwnerID)
	domain.MergeString(&i.Channel, f.Channel)
	domain.MergeString(&i.Direction, f.Direction)
	domain.MergeTime(&i.Occurred, f.Occurred)
	domain.MergeString(&i.Summary, f.Summary)
	domain.MergeString(&i.Content, f.Content)
}

// Hooks fills defaults for interactions recorded without a direction or time.
type Hooks struct {
	Now domain.Clock
}

// BeforeInsert defaults Direction to OUTBOUND and Occurred to now.
func (h Hooks) BeforeInsert(_ context.Context, _ Form, i *Interaction) error {
	if i.Direction == "" {
		i.Direction = DirectionOutbound
	}
	if i.Occurred.IsZero() {
		i.Occurred = h.Now.OrDefault()()
	}
	return nil
}
