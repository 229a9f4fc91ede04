package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Message keys for linking steps.
const (
	KeyStepLinked  = "step.already_linked"
	KeyStepForeign = "step.owned_elsewhere"
)

// Compile-time check that SequenceService implements ports.SequenceService.
var _ ports.SequenceService = (*SequenceService)(nil)

// SequenceService implements ports.SequenceService.
type SequenceService struct {
	*EntityService[sequence.Form, sequence.Sequence]
	steps  *lifecycle.Engine[sequence.StepForm, sequence.Step]
	linker *lifecycle.StrongResolver[sequence.StepForm, sequence.Step]
}

// NewSequenceService creates a SequenceService.
func NewSequenceService(
	sequences *lifecycle.Engine[sequence.Form, sequence.Sequence],
	steps *lifecycle.Engine[sequence.StepForm, sequence.Step],
	logger *slog.Logger,
) *SequenceService {
	return &SequenceService{
		EntityService: NewEntityService(sequences, logger),
		steps:         steps,
		linker:        lifecycle.NewStrongResolver(steps),
	}
}

// AddStep stores the step, or reuses an existing one named by id, and links
// it to the sequence.
func (s *SequenceService) AddStep(ctx context.Context, sequenceID string, form sequence.StepForm) (sequence.StepForm, error) {
	s.logger.InfoContext(ctx, "adding step", slog.String("sequence_id", sequenceID))

	out, err := s.addStep(ctx, sequenceID, form)
	if err != nil {
		logFailure(ctx, s.logger, "AddStep", err, slog.String("sequence_id", sequenceID))
		return sequence.StepForm{}, err
	}
	return out, nil
}

func (s *SequenceService) addStep(ctx context.Context, sequenceID string, form sequence.StepForm) (sequence.StepForm, error) {
	seq, err := s.engine.Load(ctx, sequenceID)
	if err != nil {
		return sequence.StepForm{}, err
	}
	if form.ID != "" && seq.HasStep(form.ID) {
		return sequence.StepForm{}, &domain.RuleError{
			Key:  KeyStepLinked,
			Args: []any{form.ID, sequenceID},
			Kind: domain.ErrConflict,
		}
	}

	child := s.steps.Projector().ToEntity(form)
	child.SequenceID = sequenceID

	var linked *sequence.Step
	if err := s.linker.OnSave(ctx, child, func(st *sequence.Step) { linked = st }); err != nil {
		return sequence.StepForm{}, err
	}
	if linked == nil {
		return sequence.StepForm{}, &domain.NotFoundError{Entity: sequence.StepEntityName, ID: form.ID}
	}
	if err := claimChild(ctx, s.steps, linked, linked.ID, &linked.SequenceID, sequenceID, KeyStepForeign); err != nil {
		return sequence.StepForm{}, err
	}

	seq.StepIDs = append(seq.StepIDs, linked.ID)
	if err := s.engine.Save(ctx, seq); err != nil {
		return sequence.StepForm{}, fmt.Errorf("linking step: %w", err)
	}
	return s.steps.Projector().ToTransfer(linked), nil
}

// ListSteps returns the sequence's steps ordered by position.
func (s *SequenceService) ListSteps(ctx context.Context, sequenceID string) ([]sequence.StepForm, error) {
	steps, err := s.loadSteps(ctx, sequenceID)
	if err != nil {
		s.logFailure(ctx, "ListSteps", sequenceID, err)
		return nil, err
	}

	proj := s.steps.Projector()
	out := make([]sequence.StepForm, 0, len(steps))
	for _, st := range steps {
		out = append(out, proj.ToTransfer(st))
	}
	return out, nil
}

func (s *SequenceService) loadSteps(ctx context.Context, sequenceID string) ([]*sequence.Step, error) {
	if _, err := s.engine.Load(ctx, sequenceID); err != nil {
		return nil, err
	}
	steps, err := s.steps.Store().FindBy(ctx, IndexSequence, sequenceID)
	if err != nil {
		return nil, fmt.Errorf("loading steps: %w", err)
	}
	slices.SortStableFunc(steps, byPosition(func(st *sequence.Step) int { return st.Position }))
	return steps, nil
}
