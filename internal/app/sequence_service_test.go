package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
)

func TestSequenceService_Steps(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewSequenceService(e.Sequences, e.Steps, discardLogger())
	ctx := t.Context()

	seq, err := svc.Create(ctx, sequence.Form{Name: "Warm intro"})
	require.NoError(t, err)

	for _, pos := range []int{3, 1, 2} {
		_, err := svc.AddStep(ctx, seq.ID, sequence.StepForm{
			Position:    domain.Ptr(pos),
			Timespan:    domain.Ptr(1),
			Personality: domain.PersonalityInfluential,
			Channel:     domain.ChannelEmail,
		})
		require.NoError(t, err)
	}

	got, err := svc.ListSteps(ctx, seq.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range []int{1, 2, 3} {
		assert.Equal(t, want, domain.Deref(got[i].Position))
		assert.Equal(t, seq.ID, got[i].SequenceID)
	}

	stored, err := svc.FindByID(ctx, seq.ID)
	require.NoError(t, err)
	assert.Len(t, stored.StepIDs, 3)

	_, err = svc.AddStep(ctx, seq.ID, sequence.StepForm{ID: got[0].ID})
	requireRuleKey(t, err, KeyStepLinked)

	_, err = svc.ListSteps(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSequenceService_Update_SingleOwner(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewSequenceService(e.Sequences, e.Steps, discardLogger())
	ctx := t.Context()

	seq, err := svc.Create(ctx, sequence.Form{
		Name:  "Renewal",
		Users: []sequence.UserForm{{UserID: "ann", Role: sequence.RoleOwner}, {UserID: "bob", Role: sequence.RoleEditor}},
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, seq.ID, sequence.Form{
		Users: []sequence.UserForm{{UserID: "bob", Role: sequence.RoleOwner}},
	})
	require.NoError(t, err)

	roles := map[string]sequence.Role{}
	for _, u := range got.Users {
		roles[u.UserID] = u.Role
	}
	assert.Equal(t, map[string]sequence.Role{"ann": sequence.RoleEditor, "bob": sequence.RoleOwner}, roles)
}

func TestSequenceService_AddStep_ExistingStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		parent     func(ownerID string) string
		wantKey    string
		wantListed bool
	}{
		{name: "step of another sequence", parent: func(ownerID string) string { return ownerID }, wantKey: KeyStepForeign},
		{name: "orphan step is adopted", parent: func(string) string { return "" }, wantListed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEngines(t)
			svc := NewSequenceService(e.Sequences, e.Steps, discardLogger())
			ctx := t.Context()

			owner, err := svc.Create(ctx, sequence.Form{Name: "Warm intro"})
			require.NoError(t, err)
			target, err := svc.Create(ctx, sequence.Form{Name: "Renewal"})
			require.NoError(t, err)

			step, err := e.Steps.Create(ctx, sequence.StepForm{
				SequenceID:  tt.parent(owner.ID),
				Position:    domain.Ptr(1),
				Timespan:    domain.Ptr(2),
				Personality: domain.PersonalitySteady,
				Channel:     domain.ChannelEmail,
			})
			require.NoError(t, err)

			_, err = svc.AddStep(ctx, target.ID, sequence.StepForm{ID: step.ID})
			if tt.wantKey != "" {
				requireRuleKey(t, err, tt.wantKey)
				assert.ErrorIs(t, err, domain.ErrConflict)

				stored, err := svc.FindByID(ctx, target.ID)
				require.NoError(t, err)
				assert.Empty(t, stored.StepIDs, "the rejected step is not linked")
				return
			}
			require.NoError(t, err)

			got, err := svc.ListSteps(ctx, target.ID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, step.ID, got[0].ID)
			assert.Equal(t, target.ID, got[0].SequenceID)

			stored, err := svc.FindByID(ctx, target.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{step.ID}, stored.StepIDs)
		})
	}
}
