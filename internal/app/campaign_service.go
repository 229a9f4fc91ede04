package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/lifecycle"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/campaign"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// KeyProspectEnrolled is the message key for enrolling a prospect twice.
const KeyProspectEnrolled = "campaign.prospect.already_linked"

// Compile-time check that CampaignService implements ports.CampaignService.
var _ ports.CampaignService = (*CampaignService)(nil)

// CampaignService implements ports.CampaignService.
type CampaignService struct {
	*EntityService[campaign.Form, campaign.Campaign]
	prospects *lifecycle.Engine[prospect.Form, prospect.Prospect]
}

// NewCampaignService creates a CampaignService.
func NewCampaignService(
	campaigns *lifecycle.Engine[campaign.Form, campaign.Campaign],
	prospects *lifecycle.Engine[prospect.Form, prospect.Prospect],
	logger *slog.Logger,
) *CampaignService {
	return &CampaignService{
		EntityService: NewEntityService(campaigns, logger),
		prospects:     prospects,
	}
}

// AddProspect enrolls an existing prospect in the campaign. The link's status
// and added date are defaulted by the campaign save hooks.
func (s *CampaignService) AddProspect(ctx context.Context, campaignID string, form campaign.ProspectForm) (campaign.Form, error) {
	s.logger.InfoContext(ctx, "enrolling prospect",
		slog.String("campaign_id", campaignID),
		slog.String("prospect_id", form.ProspectID),
	)

	out, err := s.addProspect(ctx, campaignID, form)
	if err != nil {
		logFailure(ctx, s.logger, "AddProspect", err,
			slog.String("campaign_id", campaignID),
			slog.String("prospect_id", form.ProspectID),
		)
		return campaign.Form{}, err
	}
	return out, nil
}

func (s *CampaignService) addProspect(ctx context.Context, campaignID string, form campaign.ProspectForm) (campaign.Form, error) {
	c, err := s.engine.Load(ctx, campaignID)
	if err != nil {
		return campaign.Form{}, err
	}
	if _, err := s.prospects.Load(ctx, form.ProspectID); err != nil {
		return campaign.Form{}, err
	}
	if c.HasProspect(form.ProspectID) {
		return campaign.Form{}, &domain.RuleError{
			Key:  KeyProspectEnrolled,
			Args: []any{form.ProspectID, c.Name},
			Kind: domain.ErrConflict,
		}
	}

	link := campaign.Prospect{ProspectID: form.ProspectID, Status: form.Status}
	domain.MergeTime(&link.Added, form.Added)
	c.Prospects = append(c.Prospects, link)

	if err := s.engine.Save(ctx, c); err != nil {
		return campaign.Form{}, fmt.Errorf("enrolling prospect: %w", err)
	}
	return s.engine.Projector().ToTransfer(c), nil
}
