package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"nexuraPortal/internal/activation"
	"nexuraPortal/internal/seed"
	"nexuraPortal/internal/types/campaign"
	"nexuraPortal/internal/types/metadata"
)

type CampaignSource interface {
	FetchCampaigns(ctx context.Context) (campaign.Collections, error)
}

type CampaignEntry struct {
	campaign.Campaign
	Meta     metadata.Metadata `json:"meta"`
	IsActive bool              `json:"isActive"`
}

type CampaignBoard struct {
	Active   []CampaignEntry `json:"active"`
	Upcoming []CampaignEntry `json:"upcoming"`
}

type CampaignService struct {
	source CampaignSource
	logger *zap.Logger
	now    func() time.Time
}

func NewCampaignService(source CampaignSource, logger *zap.Logger) *CampaignService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{
		source: source,
		logger: logger.Named("campaigns"),
		now:    time.Now,
	}
}

func (s *CampaignService) SetClock(now func() time.Time) {
	s.now = now
}

// Board performs one fetch and derives the active and upcoming groups.
func (s *CampaignService) Board(ctx context.Context) (CampaignBoard, error) {
	collections, err := s.source.FetchCampaigns(ctx)
	if err != nil {
		return CampaignBoard{}, err
	}
	return s.Derive(&collections, s.now()), nil
}

// Derive merges the seed card ahead of the fetched collections and
// partitions the result at now.
func (s *CampaignService) Derive(c *campaign.Collections, now time.Time) CampaignBoard {
	all := seed.MergeCampaigns([]campaign.Campaign{seed.CampaignTasksCard()}, c)
	groups := activation.PartitionCampaigns(all, now)
	return CampaignBoard{
		Active:   s.entries(groups.Active, true),
		Upcoming: s.entries(groups.Upcoming, false),
	}
}

// TasksCard is the promotional card behind /campaigns/tasks.
func (s *CampaignService) TasksCard() CampaignEntry {
	card := seed.CampaignTasksCard()
	active := activation.ClassifyCampaign(card.ActivationWindow(), s.now()) == activation.Active
	return s.entry(card, active)
}

func (s *CampaignService) entries(in []campaign.Campaign, active bool) []CampaignEntry {
	out := make([]CampaignEntry, 0, len(in))
	for _, c := range in {
		out = append(out, s.entry(c, active))
	}
	return out
}

func (s *CampaignService) entry(c campaign.Campaign, active bool) CampaignEntry {
	meta, discarded := metadata.Parse(c.Metadata)
	if discarded {
		metadataParseFailures.WithLabelValues("campaign").Inc()
		s.logger.Debug("ignoring malformed metadata", zap.String("id", c.ID))
	}
	return CampaignEntry{Campaign: c, Meta: meta, IsActive: active}
}
