// Package leaderboard derives the podium and the ranked list from a board the
// backend has already sorted by xp. Nothing here sorts or validates order.
package leaderboard

import (
	"strconv"
	"strings"

	"nexuraPortal/internal/access"
	types "nexuraPortal/internal/types/leaderboard"
)

const (
	// MaxRankedRows caps the ranked list; there is no pagination past it.
	MaxRankedRows = 50
	PodiumSize    = 3

	PlaceholderName = "—"
	AnonymousName   = "Anonymous"
)

type Medal string

const (
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

var medals = [PodiumSize]Medal{MedalGold, MedalSilver, MedalBronze}

// RowVectors are the decorative icons cycled over ranked rows.
var RowVectors = []string{
	"/leaderboard-assets/vector4556-bf2l.svg",
	"/leaderboard-assets/vector4556-vgzt.svg",
	"/leaderboard-assets/vector4556-p8.svg",
	"/leaderboard-assets/vector4556-739.svg",
	"/leaderboard-assets/vector4556-xff.svg",
	"/leaderboard-assets/vector4556-2zei.svg",
}

var MedalAssets = map[Medal]string{
	MedalGold:   "/leaderboard-assets/gold72x15852-yld-200w.png",
	MedalSilver: "/leaderboard-assets/silver72x15852-wqrf-200w.png",
	MedalBronze: "/leaderboard-assets/bronze72x15852-hwq-200w.png",
}

type Slot struct {
	Rank        int                    `json:"rank"`
	Medal       Medal                  `json:"medal"`
	Entry       types.LeaderboardEntry `json:"entry"`
	Placeholder bool                   `json:"placeholder,omitempty"`
}

type Row struct {
	Rank   int                    `json:"rank"`
	Name   string                 `json:"name"`
	Vector string                 `json:"vector"`
	Entry  types.LeaderboardEntry `json:"entry"`
}

// Podium always yields three slots; missing positions are padded with a
// placeholder entry (xp 0, level 1).
func Podium(entries []types.LeaderboardEntry) [PodiumSize]Slot {
	var slots [PodiumSize]Slot
	for i := range slots {
		slots[i] = Slot{Rank: i + 1, Medal: medals[i]}
		if i < len(entries) {
			slots[i].Entry = entries[i]
			continue
		}
		slots[i].Entry = placeholder(i)
		slots[i].Placeholder = true
	}
	return slots
}

// PodiumOrder arranges the slots in their visual order: second, first, third.
func PodiumOrder(slots [PodiumSize]Slot) []Slot {
	return []Slot{slots[1], slots[0], slots[2]}
}

func placeholder(i int) types.LeaderboardEntry {
	return types.LeaderboardEntry{
		ID:       "pad-" + strconv.Itoa(i),
		Username: PlaceholderName,
		XP:       0,
		Level:    1,
	}
}

// Ranked keeps the first MaxRankedRows entries in input order.
func Ranked(entries []types.LeaderboardEntry) []Row {
	n := min(len(entries), MaxRankedRows)
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{
			Rank:   i + 1,
			Name:   DisplayName(entries[i], AnonymousName),
			Vector: RowVectors[i%len(RowVectors)],
			Entry:  entries[i],
		})
	}
	return rows
}

// DisplayName falls back from username to display_name to fallback.
func DisplayName(e types.LeaderboardEntry, fallback string) string {
	if name := strings.TrimSpace(e.Username); name != "" {
		return name
	}
	if name := strings.TrimSpace(e.DisplayName); name != "" {
		return name
	}
	return fallback
}

// SelfRank finds the viewer's own row. Anonymous viewers have none.
func SelfRank(entries []types.LeaderboardEntry, viewer access.Principal) (Row, bool) {
	if viewer.Anonymous() {
		return Row{}, false
	}
	for i, e := range entries {
		if matches(e, viewer) {
			return Row{
				Rank:   i + 1,
				Name:   DisplayName(e, AnonymousName),
				Vector: RowVectors[i%len(RowVectors)],
				Entry:  e,
			}, true
		}
	}
	return Row{}, false
}

func matches(e types.LeaderboardEntry, p access.Principal) bool {
	switch {
	case p.UserID != "" && e.ID == p.UserID:
		return true
	case p.Username != "" && strings.EqualFold(e.Username, p.Username):
		return true
	case p.Address != "" && strings.EqualFold(e.Address, p.Address):
		return true
	}
	return false
}
