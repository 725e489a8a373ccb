package quest

import (
	"nexuraPortal/internal/activation"
	"nexuraPortal/internal/types/metadata"
	"nexuraPortal/internal/types/reward"
)

const KindOneTime = "one-time"

type Quest struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ProjectName  string         `json:"project_name,omitempty"`
	ProjectImage string         `json:"project_image,omitempty"`
	Reward       *reward.Reward `json:"reward,omitempty"`
	StartsAt     string         `json:"starts_at,omitempty"`
	EndsAt       string         `json:"ends_at,omitempty"`
	Metadata     metadata.Raw   `json:"metadata,omitempty"`
	URL          string         `json:"url,omitempty"`
	Status       string         `json:"status,omitempty"`
	ActionLabel  string         `json:"actionLabel,omitempty"`
	Kind         string         `json:"kind,omitempty"`
}

func (q Quest) ActivationWindow() activation.Window {
	return activation.Window{StartsAt: q.StartsAt, EndsAt: q.EndsAt, Status: q.Status}
}

// Collections is the GET /api/quests payload.
type Collections struct {
	OneTimeQuests  []Quest `json:"oneTimeQuests"`
	DailyQuests    []Quest `json:"dailyQuests"`
	FeaturedQuests []Quest `json:"featuredQuests"`
}
