package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
)

func newProspectService(t *testing.T) (*ProspectService, *Engines, string) {
	t.Helper()
	e := newEngines(t)
	svc := NewProspectService(e.Prospects, e.Interactions, e.Todos, 4, discardLogger())

	p, err := svc.Create(t.Context(), prospect.Form{
		AccountID:   "acct-1",
		LinkedInURL: "https://linkedin.com/in/grace",
		Name:        "Grace",
	})
	require.NoError(t, err)
	return svc, e, p.ID
}

func TestProspectService_Create_Duplicate(t *testing.T) {
	t.Parallel()
	svc, _, _ := newProspectService(t)

	_, err := svc.Create(t.Context(), prospect.Form{LinkedInURL: "https://linkedin.com/in/grace"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProspectService_AddInteraction(t *testing.T) {
	t.Parallel()
	svc, _, id := newProspectService(t)
	ctx := t.Context()

	got, err := svc.AddInteraction(ctx, id, interaction.Form{Channel: domain.ChannelEmail, Summary: "intro"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, id, got.OwnerID)
	assert.Equal(t, interaction.DirectionOutbound, got.Direction)

	p, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{got.ID}, p.InteractionIDs)

	t.Run("already linked", func(t *testing.T) {
		_, err := svc.AddInteraction(ctx, id, interaction.Form{ID: got.ID})
		requireRuleKey(t, err, KeyInteractionLinked)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("stale id", func(t *testing.T) {
		_, err := svc.AddInteraction(ctx, id, interaction.Form{ID: "gone"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("interaction of another prospect", func(t *testing.T) {
		other, err := svc.Create(ctx, prospect.Form{AccountID: "acct-1", LinkedInURL: "https://linkedin.com/in/alan"})
		require.NoError(t, err)
		theirs, err := svc.AddInteraction(ctx, other.ID, interaction.Form{Summary: "their call"})
		require.NoError(t, err)

		_, err = svc.AddInteraction(ctx, id, interaction.Form{ID: theirs.ID})
		requireRuleKey(t, err, KeyInteractionForeign)
		assert.ErrorIs(t, err, domain.ErrConflict)

		mine, err := svc.ListInteractions(ctx, id)
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})

	t.Run("unknown prospect", func(t *testing.T) {
		_, err := svc.AddInteraction(ctx, "missing", interaction.Form{Summary: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProspectService_ListInteractions_NewestFirst(t *testing.T) {
	t.Parallel()
	svc, _, id := newProspectService(t)
	ctx := t.Context()

	older := fixedNow.AddDate(0, 0, -2)
	newer := fixedNow.AddDate(0, 0, -1)
	_, err := svc.AddInteraction(ctx, id, interaction.Form{Summary: "older", Occurred: &older})
	require.NoError(t, err)
	_, err = svc.AddInteraction(ctx, id, interaction.Form{Summary: "newer", Occurred: &newer})
	require.NoError(t, err)

	got, err := svc.ListInteractions(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Summary)
	assert.Equal(t, "older", got[1].Summary)
}

func TestProspectService_AddInteraction_AdoptsOrphan(t *testing.T) {
	t.Parallel()
	svc, e, id := newProspectService(t)
	ctx := t.Context()

	orphan, err := e.Interactions.Create(ctx, interaction.Form{Channel: domain.ChannelPhone, Summary: "walk-in"})
	require.NoError(t, err)
	require.Empty(t, orphan.OwnerID)

	got, err := svc.AddInteraction(ctx, id, interaction.Form{ID: orphan.ID})
	require.NoError(t, err)
	assert.Equal(t, id, got.OwnerID)

	listed, err := svc.ListInteractions(ctx, id)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, orphan.ID, listed[0].ID)

	p, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan.ID}, p.InteractionIDs)
}
