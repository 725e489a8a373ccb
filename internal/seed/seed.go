// Package seed holds the hard-coded promotional entries shown alongside
// backend data, and the merge that places them ahead of fetched collections.
package seed

import (
	"time"

	"nexuraPortal/internal/types/campaign"
	"nexuraPortal/internal/types/metadata"
	"nexuraPortal/internal/types/quest"
	"nexuraPortal/internal/types/reward"
)

// TasksCardID identifies the promotional card on both list pages.
const TasksCardID = "tasks-card"

const questTasksCardLifetime = 365 * 24 * time.Hour

// CampaignTasksCard opens on 2025-12-05 and has no end.
func CampaignTasksCard() campaign.Campaign {
	return campaign.Campaign{
		ID:           TasksCardID,
		Title:        "Start Campaign Tasks",
		Description:  "Complete unique tasks in the Nexura ecosystem and earn rewards",
		ProjectName:  "NEXURA",
		Participants: 250,
		Reward:       reward.Pooled(16, "TRUST", 4000),
		ProjectImage: "/campaign.png",
		StartsAt:     "2025-12-05T00:00:00Z",
		Metadata:     metadata.Encode(metadata.Metadata{"category": "Tasks"}),
	}
}

// QuestTasksCard is open for a year from now, so it is always active when
// rendered.
func QuestTasksCard(now time.Time) quest.Quest {
	return quest.Quest{
		ID:           TasksCardID,
		Title:        "Start Tasks",
		Description:  "Complete unique tasks in the Nexura ecosystem and earn rewards",
		ProjectName:  "Intuition Ecosystem",
		Reward:       reward.Text("500 XP"),
		ProjectImage: "/quest-1.png",
		StartsAt:     now.UTC().Format(time.RFC3339),
		EndsAt:       now.Add(questTasksCardLifetime).UTC().Format(time.RFC3339),
		Metadata:     metadata.Encode(metadata.Metadata{"category": "Tasks"}),
	}
}

const discordInvite = "https://discord.gg/caK9kATBya"

// OneTimeQuests are completed once per page session: visit, then claim.
func OneTimeQuests() []quest.Quest {
	return []quest.Quest{
		{
			ID:          "onetime-discord-join",
			Title:       "Connect Discord",
			Description: "Link your Discord account",
			Reward:      reward.Text("50 XP"),
			Kind:        quest.KindOneTime,
			URL:         discordInvite,
			ActionLabel: "Connect",
		},
		{
			ID:          "onetime-join-discord",
			Title:       "Join Discord",
			Description: "Join our Discord server",
			Reward:      reward.Text("50 XP"),
			Kind:        quest.KindOneTime,
			URL:         discordInvite,
			ActionLabel: "Join",
		},
	}
}

// MergeCampaigns concatenates the seed ahead of the fetched collections in
// the order one-time, featured, upcoming. A nil payload contributes nothing.
func MergeCampaigns(seed []campaign.Campaign, c *campaign.Collections) []campaign.Campaign {
	out := append([]campaign.Campaign{}, seed...)
	if c == nil {
		return out
	}
	out = append(out, c.OneTimeCampaigns...)
	out = append(out, c.FeaturedCampaigns...)
	out = append(out, c.UpcomingCampaigns...)
	return out
}

// MergeQuests concatenates the seed ahead of the fetched collections in the
// order one-time, daily, featured.
func MergeQuests(seed []quest.Quest, c *quest.Collections) []quest.Quest {
	out := append([]quest.Quest{}, seed...)
	if c == nil {
		return out
	}
	out = append(out, c.OneTimeQuests...)
	out = append(out, c.DailyQuests...)
	out = append(out, c.FeaturedQuests...)
	return out
}
