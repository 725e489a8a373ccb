package campaign

import (
	"nexuraPortal/internal/activation"
	"nexuraPortal/internal/types/metadata"
	"nexuraPortal/internal/types/reward"
)

type Campaign struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ProjectName  string         `json:"project_name,omitempty"`
	ProjectImage string         `json:"project_image,omitempty"`
	Participants int            `json:"participants,omitempty"`
	Reward       *reward.Reward `json:"reward,omitempty"`
	StartsAt     string         `json:"starts_at,omitempty"`
	EndsAt       string         `json:"ends_at,omitempty"`
	Metadata     metadata.Raw   `json:"metadata,omitempty"`
	URL          string         `json:"url,omitempty"`
	Status       string         `json:"status,omitempty"`
}

func (c Campaign) ActivationWindow() activation.Window {
	return activation.Window{StartsAt: c.StartsAt, EndsAt: c.EndsAt, Status: c.Status}
}

// Collections is the GET /api/campaigns payload.
type Collections struct {
	OneTimeCampaigns  []Campaign `json:"oneTimeCampaigns"`
	FeaturedCampaigns []Campaign `json:"featuredCampaigns"`
	UpcomingCampaigns []Campaign `json:"upcomingCampaigns"`
}
