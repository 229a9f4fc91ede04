package sequence

import (
	"cmp"
	"slices"
	"time"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// StepEntityName is the entity type of a sequence step.
const StepEntityName = "step"

// Step is one outreach touch in a sequence. Timespan is the delay in days
// after the previous step, not an absolute offset.
type Step struct {
	domain.Base `bson:",inline"`

	SequenceID  string             `json:"sequence_id" bson:"sequence_id"`
	Position    int                `json:"position" bson:"position"`
	Personality domain.Personality `json:"personality" bson:"personality"`
	Channel     domain.Channel     `json:"channel" bson:"channel"`
	Timespan    int                `json:"timespan" bson:"timespan"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
	Attachment  string             `json:"attachment,omitempty" bson:"attachment,omitempty"`
}

// StepForm is the transfer form of a step.
type StepForm struct {
	ID          string             `json:"id,omitempty"`
	SequenceID  string             `json:"sequence_id,omitempty"`
	Position    *int               `json:"position,omitempty" validate:"omitempty,min=0" create:"required"`
	Personality domain.Personality `json:"personality,omitempty" validate:"omitempty,oneof=DOMINANT INFLUENTIAL STEADY CONSCIENTIOUS" create:"required"`
	Channel     domain.Channel     `json:"channel,omitempty" validate:"omitempty,oneof=EMAIL LINKEDIN PHONE SMS MEETING OTHER" create:"required"`
	Timespan    *int               `json:"timespan,omitempty" validate:"omitempty,min=0,max=365" create:"required"`
	Subject     string             `json:"subject,omitempty" validate:"omitempty,max=300"`
	Message     string             `json:"message,omitempty" validate:"omitempty,max=10000"`
	Link        string             `json:"link,omitempty" validate:"omitempty,url"`
	Attachment  string             `json:"attachment,omitempty" validate:"omitempty,max=500"`
	Created     time.Time          `json:"created,omitzero"`
	Updated     time.Time          `json:"updated,omitzero"`
}

// StepProjector converts between StepForm and Step.
type StepProjector struct{}

// ToEntity projects every field of f onto a new Step.
func (StepProjector) ToEntity(f StepForm) *Step {
	return &Step{
		Base:        domain.Base{ID: f.ID},
		SequenceID:  f.SequenceID,
		Position:    domain.Deref(f.Position),
		Personality: f.Personality,
		Channel:     f.Channel,
		Timespan:    domain.Deref(f.Timespan),
		Subject:     f.Subject,
		Message:     f.Message,
		Link:        f.Link,
		Attachment:  f.Attachment,
	}
}

// ToTransfer projects every field of s onto a StepForm.
func (StepProjector) ToTransfer(s *Step) StepForm {
	return StepForm{
		ID:          s.ID,
		SequenceID:  s.SequenceID,
		Position:    domain.Ptr(s.Position),
		Personality: s.Personality,
		Channel:     s.Channel,
		Timespan:    domain.Ptr(s.Timespan),
		Subject:     s.Subject,
		Message:     s.Message,
		Link:        s.Link,
		Attachment:  s.Attachment,
		Created:     s.Created,
		Updated:     s.Updated,
	}
}

// Merge copies the fields present on f onto s.
func (StepProjector) Merge(s *Step, f StepForm) {
	domain.MergeString(&s.SequenceID, f.SequenceID)
	domain.MergeValue(&s.Position, f.Position)
	domain.MergeString(&s.Personality, f.Personality)
	domain.MergeString(&s.Channel, f.Channel)
	domain.MergeValue(&s.Timespan, f.Timespan)
	domain.MergeString(&s.Subject, f.Subject)
	domain.MergeString(&s.Message, f.Message)
	domain.MergeString(&s.Link, f.Link)
	domain.MergeString(&s.Attachment, f.Attachment)
}

// ForPersonality returns the steps targeting p, ordered by Position. Steps
// sharing a position keep their input order.
func ForPersonality(steps []*Step, p domain.Personality) []*Step {
	out := make([]*Step, 0, len(steps))
	for _, s := range steps {
		if s.Personality == p {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b *Step) int { return cmp.Compare(a.Position, b.Position) })
	return out
}

// CumulativeOffsets converts the per-step delays of ordered steps into
// absolute day offsets: offsets[i] is the sum of Timespan over steps[0..i].
func CumulativeOffsets(steps []*Step) []int {
	offsets := make([]int, len(steps))
	sum := 0
	for i, s := range steps {
		sum += s.Timespan
		offsets[i] = sum
	}
	return offsets
}
