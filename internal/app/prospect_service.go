package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Message keys for linking interactions.
const (
	KeyInteractionLinked  = "interaction.already_linked"
	KeyInteractionForeign = "interaction.owned_elsewhere"
)

// Compile-time check that ProspectService implements ports.ProspectService.
var _ ports.ProspectService = (*ProspectService)(nil)

// ProspectService implements ports.ProspectService.
type ProspectService struct {
	*EntityService[prospect.Form, prospect.Prospect]
	interactions *lifecycle.Engine[interaction.Form, interaction.Interaction]
	linker       *lifecycle.StrongResolver[interaction.Form, interaction.Interaction]
	todos        *lifecycle.Engine[todo.Form, todo.Todo]
	maxWorkers   int
}

// NewProspectService creates a ProspectService.
func NewProspectService(
	prospects *lifecycle.Engine[prospect.Form, prospect.Prospect],
	interactions *lifecycle.Engine[interaction.Form, interaction.Interaction],
	todos *lifecycle.Engine[todo.Form, todo.Todo],
	maxWorkers int,
	logger *slog.Logger,
) *ProspectService {
	return &ProspectService{
		EntityService: NewEntityService(prospects, logger),
		interactions:  interactions,
		linker:        lifecycle.NewStrongResolver(interactions),
		todos:         todos,
		maxWorkers:    maxWorkers,
	}
}

// AddInteraction stores the interaction, or reuses an existing one named by
// id, and links it to the prospect.
func (s *ProspectService) AddInteraction(ctx context.Context, prospectID string, form interaction.Form) (interaction.Form, error) {
	s.logger.InfoContext(ctx, "adding interaction", slog.String("prospect_id", prospectID))

	out, err := s.addInteraction(ctx, prospectID, form)
	if err != nil {
		logFailure(ctx, s.logger, "AddInteraction", err, slog.String("prospect_id", prospectID))
		return interaction.Form{}, err
	}
	return out, nil
}

func (s *ProspectService) addInteraction(ctx context.Context, prospectID string, form interaction.Form) (interaction.Form, error) {
	p, err := s.engine.Load(ctx, prospectID)
	if err != nil {
		return interaction.Form{}, err
	}
	if form.ID != "" && p.HasInteraction(form.ID) {
		return interaction.Form{}, &domain.RuleError{
			Key:  KeyInteractionLinked,
			Args: []any{form.ID, prospectID},
			Kind: domain.ErrConflict,
		}
	}

	child := s.interactions.Projector().ToEntity(form)
	child.OwnerID = prospectID

	var linked *interaction.Interaction
	if err := s.linker.OnSave(ctx, child, func(i *interaction.Interaction) { linked = i }); err != nil {
		return interaction.Form{}, err
	}
	if linked == nil {
		return interaction.Form{}, &domain.NotFoundError{Entity: interaction.EntityName, ID: form.ID}
	}
	if err := claimChild(ctx, s.interactions, linked, linked.ID, &linked.OwnerID, prospectID, KeyInteractionForeign); err != nil {
		return interaction.Form{}, err
	}

	p.InteractionIDs = append(p.InteractionIDs, linked.ID)
	if err := s.engine.Save(ctx, p); err != nil {
		return interaction.Form{}, fmt.Errorf("linking interaction: %w", err)
	}
	return s.interactions.Projector().ToTransfer(linked), nil
}

// ListInteractions returns the prospect's interactions, newest first.
func (s *ProspectService) ListInteractions(ctx context.Context, prospectID string) ([]interaction.Form, error) {
	if _, err := s.engine.Load(ctx, prospectID); err != nil {
		s.logFailure(ctx, "ListInteractions", prospectID, err)
		return nil, err
	}

	items, err := s.interactions.Store().FindBy(ctx, IndexOwner, prospectID)
	if err != nil {
		s.logFailure(ctx, "ListInteractions", prospectID, err)
		return nil, err
	}
	slices.SortStableFunc(items, func(a, b *interaction.Interaction) int { return b.Occurred.Compare(a.Occurred) })

	proj := s.interactions.Projector()
	out := make([]interaction.Form, 0, len(items))
	for _, i := range items {
		out = append(out, proj.ToTransfer(i))
	}
	return out, nil
}

// ListTodos returns the todos linked to the prospect, in schedule order.
func (s *ProspectService) ListTodos(ctx context.Context, prospectID string) ([]todo.Form, error) {
	p, err := s.engine.Load(ctx, prospectID)
	if err != nil {
		s.logFailure(ctx, "ListTodos", prospectID, err)
		return nil, err
	}

	todos, err := linkedTodos(ctx, s.todos, s.maxWorkers, p.TodoIDs)
	if err != nil {
		s.logFailure(ctx, "ListTodos", prospectID, err)
		return nil, err
	}
	return todoForms(todos), nil
}
