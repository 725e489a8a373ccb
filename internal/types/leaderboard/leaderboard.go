package leaderboard

import (
	"encoding/json"
	"fmt"
)

type LeaderboardEntry struct {
	ID                 string  `json:"_id"`
	Username           string  `json:"username"`
	DisplayName        string  `json:"display_name,omitempty"`
	Avatar             string  `json:"avatar,omitempty"`
	Address            string  `json:"address,omitempty"`
	XP                 float64 `json:"xp"`
	Level              float64 `json:"level"`
	QuestsCompleted    *int    `json:"questsCompleted,omitempty"`
	CampaignsCompleted *int    `json:"campaignsCompleted,omitempty"`
}

// Leaderboard is the GET /api/leaderboard payload. Entries arrive sorted by
// xp, highest first.
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type wirePayload struct {
	LeaderboardInfo *struct {
		LeaderboardByXP []LeaderboardEntry `json:"leaderboardByXp"`
	} `json:"leaderboardInfo"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// Decode accepts {leaderboardInfo:{leaderboardByXp}} and falls back to the
// flatter {leaderboard} shape, then to an empty board.
func Decode(data []byte) (Leaderboard, error) {
	var p wirePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Leaderboard{}, fmt.Errorf("decode leaderboard: %w", err)
	}
	switch {
	case p.LeaderboardInfo != nil && p.LeaderboardInfo.LeaderboardByXP != nil:
		return Leaderboard{Entries: p.LeaderboardInfo.LeaderboardByXP}, nil
	case p.Leaderboard != nil:
		return Leaderboard{Entries: p.Leaderboard}, nil
	default:
		return Leaderboard{Entries: []LeaderboardEntry{}}, nil
	}
}
