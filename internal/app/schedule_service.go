package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	appctx "github.com/jsamuelsen11/pipeline-crm/internal/app/context"
	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// Message keys raised while scheduling.
const (
	KeyPersonalityMissing = "schedule.personality.missing"
	KeyAssigneeUnresolved = "schedule.assignee.unresolved"
	KeyScheduleCollision  = "schedule.collision"
	KeyTodoLinked         = "todo.already_linked"
)

// DefaultAnchorOffset is the delay between a preview and the first step.
const DefaultAnchorOffset = 24 * time.Hour

// Compile-time check that ScheduleService implements ports.ScheduleService.
var _ ports.ScheduleService = (*ScheduleService)(nil)

// ScheduleConfig holds the engines a ScheduleService reads and writes.
type ScheduleConfig struct {
	Accounts  *lifecycle.Engine[account.Form, account.Account]
	Leads     *lifecycle.Engine[lead.Form, lead.Lead]
	Prospects *lifecycle.Engine[prospect.Form, prospect.Prospect]
	Sequences *lifecycle.Engine[sequence.Form, sequence.Sequence]
	Steps     *lifecycle.Engine[sequence.StepForm, sequence.Step]
	Todos     *lifecycle.Engine[todo.Form, todo.Todo]

	// AnchorOffset defaults to DefaultAnchorOffset when zero.
	AnchorOffset time.Duration
	Logger       *slog.Logger
}

// ScheduleService expands sequences into todos for leads and prospects and
// commits the result.
type ScheduleService struct {
	accounts     *lifecycle.Engine[account.Form, account.Account]
	leads        *lifecycle.Engine[lead.Form, lead.Lead]
	prospects    *lifecycle.Engine[prospect.Form, prospect.Prospect]
	sequences    *lifecycle.Engine[sequence.Form, sequence.Sequence]
	steps        *lifecycle.Engine[sequence.StepForm, sequence.Step]
	todos        *lifecycle.Engine[todo.Form, todo.Todo]
	linker       *lifecycle.StrongResolver[todo.Form, todo.Todo]
	anchorOffset time.Duration
	logger       *slog.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(cfg ScheduleConfig) *ScheduleService {
	offset := cfg.AnchorOffset
	if offset <= 0 {
		offset = DefaultAnchorOffset
	}
	return &ScheduleService{
		accounts:     cfg.Accounts,
		leads:        cfg.Leads,
		prospects:    cfg.Prospects,
		sequences:    cfg.Sequences,
		steps:        cfg.Steps,
		todos:        cfg.Todos,
		linker:       lifecycle.NewStrongResolver(cfg.Todos),
		anchorOffset: offset,
		logger:       cfg.Logger.With(slog.String("service", "schedule")),
	}
}

// target is the owner of a schedule. link appends todo ids to the owner and
// persists it.
type target struct {
	kind        ports.TargetKind
	id          string
	accountID   string
	personality domain.Personality
	todoIDs     []string
	link        func(ctx context.Context, ids []string) error
}

func (s *ScheduleService) loadTarget(rc *appctx.RequestContext, kind ports.TargetKind, id string) (*target, error) {
	return appctx.GetOrFetch(rc, string(kind)+":"+id, func(ctx context.Context) (*target, error) {
		switch kind {
		case ports.TargetLead:
			l, err := s.leads.Load(ctx, id)
			if err != nil {
				return nil, err
			}
			return &target{
				kind: kind, id: l.ID, accountID: l.AccountID, personality: l.Personality,
				todoIDs: l.TodoIDs,
				link: func(ctx context.Context, ids []string) error {
					l.TodoIDs = ids
					return s.leads.Save(ctx, l)
				},
			}, nil
		case ports.TargetProspect:
			p, err := s.prospects.Load(ctx, id)
			if err != nil {
				return nil, err
			}
			return &target{
				kind: kind, id: p.ID, accountID: p.AccountID, personality: p.Personality,
				todoIDs: p.TodoIDs,
				link: func(ctx context.Context, ids []string) error {
					p.TodoIDs = ids
					return s.prospects.Save(ctx, p)
				},
			}, nil
		default:
			return nil, &domain.ValidationError{Fields: map[string]string{"target_kind": "oneof"}}
		}
	})
}

// Preview expands the sequence's steps for the target's personality into
// unsaved todos. The first step lands one anchor offset from now and every
// later step is offset by the running sum of step timespans, in days.
func (s *ScheduleService) Preview(ctx context.Context, req ports.ScheduleRequest) ([]todo.Form, error) {
	s.logger.InfoContext(ctx, "previewing schedule",
		slog.String("target_kind", string(req.TargetKind)),
		slog.String("target_id", req.TargetID),
		slog.String("sequence_id", req.SequenceID),
	)

	forms, err := s.preview(ctx, req)
	if err != nil {
		logFailure(ctx, s.logger, "Preview", err,
			slog.String("target_id", req.TargetID),
			slog.String("sequence_id", req.SequenceID),
		)
		return nil, err
	}
	return forms, nil
}

func (s *ScheduleService) preview(ctx context.Context, req ports.ScheduleRequest) ([]todo.Form, error) {
	tgt, err := s.loadTarget(appctx.FromContextOrNew(ctx), req.TargetKind, req.TargetID)
	if err != nil {
		return nil, err
	}
	if tgt.personality == "" {
		return nil, domain.NewRuleError(KeyPersonalityMissing, string(tgt.kind), tgt.id)
	}

	seq, err := s.sequences.Load(ctx, req.SequenceID)
	if err != nil {
		return nil, err
	}
	all, err := s.steps.Store().FindBy(ctx, IndexSequence, seq.ID)
	if err != nil {
		return nil, fmt.Errorf("loading steps: %w", err)
	}
	steps := sequence.ForPersonality(all, tgt.personality)

	assignee, err := s.resolveAssignee(ctx, tgt, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	anchor := s.todos.Now().Add(s.anchorOffset)
	offsets := sequence.CumulativeOffsets(steps)

	forms := make([]todo.Form, 0, len(steps))
	for i, st := range steps {
		forms = append(forms, todo.Form{
			OwnerID:    tgt.id,
			AccountID:  tgt.accountID,
			SequenceID: seq.ID,
			StepID:     st.ID,
			Scheduled:  domain.Ptr(anchor.AddDate(0, 0, offsets[i])),
			Channel:    st.Channel,
			Type:       todo.TypeOutreach,
			Status:     todo.StatusScheduled,
			Link:       st.Link,
			Attachment: st.Attachment,
			Note:       st.Message,
			Assignee:   assignee,
			Manual:     domain.Ptr(false),
		})
	}
	return forms, nil
}

// resolveAssignee returns explicit when set and the first collaborator of the
// target's account otherwise.
func (s *ScheduleService) resolveAssignee(ctx context.Context, tgt *target, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if tgt.accountID != "" {
		acct, found, err := s.accounts.Store().FindByID(ctx, tgt.accountID)
		if err != nil {
			return "", fmt.Errorf("loading account %s: %w", tgt.accountID, err)
		}
		if found {
			if id, ok := acct.DefaultAssignee(); ok {
				return id, nil
			}
		}
	}
	return "", domain.NewRuleError(KeyAssigneeUnresolved, string(tgt.kind), tgt.id)
}

// Commit persists the todos and links them to the target. Inserts run as a
// parallel action group followed by the owner save; a failure rolls back the
// inserts that succeeded.
func (s *ScheduleService) Commit(ctx context.Context, kind ports.TargetKind, targetID string, forms []todo.Form) ([]todo.Form, error) {
	s.logger.InfoContext(ctx, "committing schedule",
		slog.String("target_kind", string(kind)),
		slog.String("target_id", targetID),
		slog.Int("count", len(forms)),
	)

	out, err := s.commit(ctx, kind, targetID, forms)
	if err != nil {
		logFailure(ctx, s.logger, "Commit", err, slog.String("target_id", targetID))
		return nil, err
	}
	return out, nil
}

func (s *ScheduleService) commit(ctx context.Context, kind ports.TargetKind, targetID string, forms []todo.Form) ([]todo.Form, error) {
	if len(forms) == 0 {
		return nil, domain.RequiredField("todos")
	}

	rc := appctx.FromContextOrNew(ctx)
	tgt, err := s.loadTarget(rc, kind, targetID)
	if err != nil {
		return nil, err
	}

	children, err := s.admit(ctx, tgt, forms)
	if err != nil {
		return nil, err
	}

	linked := appctx.NewRef(make([]*todo.Todo, len(children)))
	actions := make([]domain.Action, 0, len(children))
	for i, child := range children {
		actions = append(actions, &linkTodoAction{
			linker: s.linker,
			store:  s.todos.Store(),
			child:  child,
			slot:   i,
			linked: linked,
		})
	}
	if err := rc.AddGroup(actions...); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&linkOwnerAction{target: tgt, linked: linked}); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		return nil, err
	}

	proj := s.todos.Projector()
	out := make([]todo.Form, 0, len(children))
	for _, t := range linked.Get() {
		if t != nil {
			out = append(out, proj.ToTransfer(t))
		}
	}
	return out, nil
}

// admit checks the batch against the owner's existing todos and projects it.
// A non-manual todo may not share its scheduled time with a stored todo of
// the same owner or with an earlier todo in the batch. A form naming a stored
// todo is checked with the stored schedule, since linking never changes it.
func (s *ScheduleService) admit(ctx context.Context, tgt *target, forms []todo.Form) ([]*todo.Todo, error) {
	existing, err := s.todos.Store().FindBy(ctx, IndexOwner, tgt.id)
	if err != nil {
		return nil, fmt.Errorf("loading todos: %w", err)
	}
	occupied := make(map[int64]string, len(existing)+len(forms))
	for _, t := range existing {
		occupied[t.Scheduled.UnixNano()] = t.ID
	}

	proj := s.todos.Projector()
	children := make([]*todo.Todo, 0, len(forms))
	for i, f := range forms {
		if f.ID != "" && slices.Contains(tgt.todoIDs, f.ID) {
			return nil, &domain.RuleError{
				Key:  KeyTodoLinked,
				Args: []any{f.ID, tgt.id},
				Kind: domain.ErrConflict,
			}
		}

		at, manual := f.Scheduled, f.IsManual()
		if f.ID != "" {
			stored, found, err := s.todos.Store().FindByID(ctx, f.ID)
			if err != nil {
				return nil, fmt.Errorf("loading todo %s: %w", f.ID, err)
			}
			if !found {
				// Skipped by the linker.
				children = append(children, proj.ToEntity(f))
				continue
			}
			at, manual = &stored.Scheduled, stored.Manual
		}
		if at == nil || at.IsZero() {
			return nil, domain.RequiredField(fmt.Sprintf("todos[%d].scheduled", i))
		}

		slot := at.UnixNano()
		if holder, taken := occupied[slot]; taken && !manual && (f.ID == "" || holder != f.ID) {
			return nil, domain.NewRuleError(KeyScheduleCollision, at.UTC().Format(time.RFC3339), tgt.id)
		}
		occupied[slot] = f.ID

		child := proj.ToEntity(f)
		child.OwnerID = tgt.id
		if child.AccountID == "" {
			child.AccountID = tgt.accountID
		}
		children = append(children, child)
	}
	return children, nil
}

// linkTodoAction stores one scheduled todo, or resolves an existing one by
// id, and records it in its slot.
type linkTodoAction struct {
	linker   *lifecycle.StrongResolver[todo.Form, todo.Todo]
	store    ports.Store[todo.Todo]
	child    *todo.Todo
	slot     int
	linked   *appctx.SafeRef[[]*todo.Todo]
	inserted bool
}

func (a *linkTodoAction) Execute(ctx context.Context) error {
	fresh := !a.child.HasID()
	err := a.linker.OnSave(ctx, a.child, func(t *todo.Todo) {
		a.linked.Update(func(s *[]*todo.Todo) { (*s)[a.slot] = t })
	})
	if err != nil {
		return err
	}
	a.inserted = fresh
	return nil
}

// Rollback deletes the todo only when Execute inserted it.
func (a *linkTodoAction) Rollback(ctx context.Context) error {
	if !a.inserted {
		return nil
	}
	return a.store.DeleteByID(ctx, a.child.ID)
}

func (a *linkTodoAction) Description() string {
	if a.child.HasID() && !a.inserted {
		return "link todo " + a.child.ID
	}
	return "insert todo"
}

// linkOwnerAction appends the linked todo ids to the owner and saves it.
type linkOwnerAction struct {
	target *target
	linked *appctx.SafeRef[[]*todo.Todo]
	prior  []string
}

func (a *linkOwnerAction) Execute(ctx context.Context) error {
	a.prior = slices.Clone(a.target.todoIDs)
	ids := slices.Clone(a.prior)
	for _, t := range a.linked.Get() {
		if t != nil {
			ids = append(ids, t.ID)
		}
	}
	if err := a.target.link(ctx, ids); err != nil {
		return fmt.Errorf("linking todos to %s %s: %w", a.target.kind, a.target.id, err)
	}
	a.target.todoIDs = ids
	return nil
}

func (a *linkOwnerAction) Rollback(ctx context.Context) error {
	if err := a.target.link(ctx, a.prior); err != nil {
		return err
	}
	a.target.todoIDs = a.prior
	return nil
}

func (a *linkOwnerAction) Description() string {
	return fmt.Sprintf("link todos to %s", a.target.kind)
}
