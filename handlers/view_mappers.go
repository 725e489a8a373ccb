package handlers

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	lb "nexuraPortal/internal/leaderboard"
	"nexuraPortal/internal/lifecycle"
	"nexuraPortal/internal/onetime"
	"nexuraPortal/internal/seed"
	"nexuraPortal/services"
	"nexuraPortal/utils"
)

const (
	CampaignTasksPath = "/campaigns/tasks"
	QuestsPath        = "/quests"
)

type CampaignCard struct {
	Anchor       string
	Title        string
	Description  string
	ProjectName  string
	ProjectImage string
	Category     string
	Badge        string
	IsActive     bool
	Participants string
	Reward       string
	RewardPool   string
	Duration     string
	ButtonLabel  string
	Href         string
	External     bool
}

type CampaignsPage struct {
	Phase    string
	Error    string
	Active   []CampaignCard
	Upcoming []CampaignCard
}

type QuestCard struct {
	Anchor       string
	Title        string
	Description  string
	ProjectImage string
	Category     string
	Badge        string
	IsActive     bool
	Reward       string
	ButtonLabel  string
	Href         string
}

type OneTimeRow struct {
	ID      string
	Title   string
	Reward  string
	Label   string
	Pending bool
	Claimed bool
	Action  string
}

type QuestsPage struct {
	Phase   string
	Error   string
	Active  []QuestCard
	OneTime []OneTimeRow
	Session string
}

type QuestDetailPage struct {
	Card        QuestCard
	Description string
	ProjectName string
	URL         string
	Starts      string
	Ends        string
}

type PodiumCard struct {
	Rank        int
	Name        string
	XP          string
	Level       string
	Avatar      string
	Medal       string
	Placeholder bool
}

type RankRow struct {
	Rank   int
	Name   string
	XP     string
	Level  string
	Avatar string
	Vector string
}

type LeaderboardPage struct {
	Phase    string
	Error    string
	Empty    bool
	Podium   []PodiumCard
	Ranked   []RankRow
	SelfRank *RankRow
}

func toCampaignCard(e services.CampaignEntry) CampaignCard {
	card := CampaignCard{
		Anchor:       "campaign-" + slug.Make(e.ID+" "+e.Title),
		Title:        e.Title,
		Description:  e.Description,
		ProjectName:  e.ProjectName,
		ProjectImage: e.ProjectImage,
		Category:     e.Meta.Category(),
		IsActive:     e.IsActive,
		Reward:       e.Reward.String(),
		RewardPool:   e.Reward.PoolLabel(),
	}
	if e.Participants > 0 {
		card.Participants = utils.FormatCount(e.Participants)
	}
	if e.StartsAt != "" {
		card.Duration = utils.FormatShortDate(e.StartsAt, "") + " – " + utils.FormatShortDate(e.EndsAt, "TBA")
	}

	switch {
	case !e.IsActive:
		card.Badge = "Coming Soon"
		card.ButtonLabel = "Coming Soon"
	case e.ID == seed.TasksCardID:
		card.Badge = "Active"
		card.ButtonLabel = "Start Tasks"
		card.Href = CampaignTasksPath
	default:
		card.Badge = "Active"
		card.ButtonLabel = "Do Task"
		card.Href = e.URL
		card.External = e.URL != ""
	}
	return card
}

func toCampaignsPage(snap lifecycle.Snapshot[services.CampaignBoard]) CampaignsPage {
	page := CampaignsPage{Phase: snap.Phase.String(), Error: snap.Message}
	if snap.Phase != lifecycle.Loaded {
		return page
	}
	for _, e := range snap.Data.Active {
		page.Active = append(page.Active, toCampaignCard(e))
	}
	for _, e := range snap.Data.Upcoming {
		page.Upcoming = append(page.Upcoming, toCampaignCard(e))
	}
	return page
}

func toQuestCard(e services.QuestEntry) QuestCard {
	card := QuestCard{
		Anchor:       "quest-" + slug.Make(e.ID+" "+e.Title),
		Title:        e.Title,
		Description:  e.Description,
		ProjectImage: e.ProjectImage,
		Category:     e.Meta.Category(),
		IsActive:     e.IsActive,
		Reward:       e.Reward.String(),
		ButtonLabel:  "Open",
		Badge:        "Soon",
	}
	if e.ID == seed.TasksCardID {
		card.ButtonLabel = "Start"
	}
	if e.IsActive {
		card.Badge = "Active"
		card.Href = QuestsPath + "/" + url.PathEscape(e.ID)
	}
	return card
}

func toOneTimeRow(e services.OneTimeEntry, session uuid.UUID) OneTimeRow {
	return OneTimeRow{
		ID:      e.ID,
		Title:   e.Title,
		Reward:  e.Reward.String(),
		Label:   e.Label,
		Pending: e.Status == onetime.Pending,
		Claimed: e.Status == onetime.Claimed,
		Action:  oneTimeAction(e.ID, session),
	}
}

func oneTimeAction(taskID string, session uuid.UUID) string {
	return QuestsPath + "/one-time/" + url.PathEscape(taskID) + "?session=" + session.String()
}

func toQuestsPage(snap lifecycle.Snapshot[[]services.QuestEntry], oneTime []services.OneTimeEntry, session uuid.UUID) QuestsPage {
	page := QuestsPage{Phase: snap.Phase.String(), Error: snap.Message, Session: session.String()}
	if snap.Phase == lifecycle.Loaded {
		for _, e := range snap.Data {
			page.Active = append(page.Active, toQuestCard(e))
		}
	}
	for _, e := range oneTime {
		page.OneTime = append(page.OneTime, toOneTimeRow(e, session))
	}
	return page
}

func toQuestDetailPage(e services.QuestEntry) QuestDetailPage {
	return QuestDetailPage{
		Card:        toQuestCard(e),
		Description: e.Description,
		ProjectName: e.ProjectName,
		URL:         e.URL,
		Starts:      utils.FormatShortDate(e.StartsAt, ""),
		Ends:        utils.FormatShortDate(e.EndsAt, ""),
	}
}

func toRankRow(r lb.Row) RankRow {
	return RankRow{
		Rank:   r.Rank,
		Name:   r.Name,
		XP:     utils.FormatXP(r.Entry.XP),
		Level:  utils.FormatNumber(r.Entry.Level),
		Avatar: r.Entry.Avatar,
		Vector: r.Vector,
	}
}

func toLeaderboardPage(snap lifecycle.Snapshot[services.LeaderboardView]) LeaderboardPage {
	page := LeaderboardPage{Phase: snap.Phase.String(), Error: snap.Message}
	if snap.Phase != lifecycle.Loaded {
		return page
	}
	v := snap.Data
	page.Empty = v.Empty()
	for _, slot := range lb.PodiumOrder(v.Podium) {
		page.Podium = append(page.Podium, PodiumCard{
			Rank:        slot.Rank,
			Name:        lb.DisplayName(slot.Entry, lb.PlaceholderName),
			XP:          utils.FormatXP(slot.Entry.XP),
			Level:       utils.FormatNumber(slot.Entry.Level),
			Avatar:      slot.Entry.Avatar,
			Medal:       lb.MedalAssets[slot.Medal],
			Placeholder: slot.Placeholder,
		})
	}
	for _, r := range v.Ranked {
		page.Ranked = append(page.Ranked, toRankRow(r))
	}
	if v.SelfRank != nil {
		row := toRankRow(*v.SelfRank)
		page.SelfRank = &row
	}
	return page
}
