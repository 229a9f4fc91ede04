package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/campaign"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
)

func TestCampaignService_AddProspect(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewCampaignService(e.Campaigns, e.Prospects, discardLogger())
	ctx := t.Context()

	c, err := svc.Create(ctx, campaign.Form{ComponentID: "q3", Name: "Spring push", Status: campaign.StatusRunning})
	require.NoError(t, err)
	p, err := e.Prospects.Create(ctx, prospect.Form{LinkedInURL: "https://linkedin.com/in/linus"})
	require.NoError(t, err)

	got, err := svc.AddProspect(ctx, c.ID, campaign.ProspectForm{ProspectID: p.ID})
	require.NoError(t, err)
	require.Len(t, got.Prospects, 1)

	link := got.Prospects[0]
	assert.Equal(t, campaign.StatusRunning, link.Status, "link inherits the campaign status")
	require.NotNil(t, link.Added)
	assert.True(t, link.Added.Equal(fixedNow))

	tests := []struct {
		name string
		id   string
		form campaign.ProspectForm
		want error
		key  string
	}{
		{"already enrolled", c.ID, campaign.ProspectForm{ProspectID: p.ID}, domain.ErrConflict, KeyProspectEnrolled},
		{"unknown prospect", c.ID, campaign.ProspectForm{ProspectID: "missing"}, domain.ErrNotFound, ""},
		{"unknown campaign", "missing", campaign.ProspectForm{ProspectID: p.ID}, domain.ErrNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProspect(ctx, tt.id, tt.form)
			assert.ErrorIs(t, err, tt.want)
			if tt.key != "" {
				requireRuleKey(t, err, tt.key)
			}
		})
	}
}

func TestCampaignService_Create_DuplicateNameInComponent(t *testing.T) {
	t.Parallel()
	e := newEngines(t)
	svc := NewCampaignService(e.Campaigns, e.Prospects, discardLogger())
	ctx := t.Context()

	_, err := svc.Create(ctx, campaign.Form{ComponentID: "q3", Name: "Spring push"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, campaign.Form{ComponentID: "q3", Name: "Spring push"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	other, err := svc.Create(ctx, campaign.Form{ComponentID: "q4", Name: "Spring push"})
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusNotStarted, other.Status)
}
