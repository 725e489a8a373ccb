package leaderboard_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuraPortal/internal/access"
	"nexuraPortal/internal/leaderboard"
	types "nexuraPortal/internal/types/leaderboard"
)

func board(n int) []types.LeaderboardEntry {
	out := make([]types.LeaderboardEntry, n)
	for i := range out {
		out[i] = types.LeaderboardEntry{
			ID:       fmt.Sprintf("u%d", i),
			Username: fmt.Sprintf("user%d", i),
			XP:       float64(1000 - i),
			Level:    10,
		}
	}
	return out
}

func TestPodiumAlwaysHasThreeSlots(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			slots := leaderboard.Podium(board(n))
			require.Len(t, slots, 3)
			for i, slot := range slots {
				assert.Equal(t, i+1, slot.Rank)
				if i < n {
					assert.False(t, slot.Placeholder)
					assert.Equal(t, fmt.Sprintf("u%d", i), slot.Entry.ID)
					continue
				}
				assert.True(t, slot.Placeholder)
				assert.Zero(t, slot.Entry.XP)
				assert.Equal(t, 1.0, slot.Entry.Level)
				assert.Equal(t, leaderboard.PlaceholderName, slot.Entry.Username)
			}
		})
	}
}

func TestPodiumPadsThirdPlace(t *testing.T) {
	slots := leaderboard.Podium([]types.LeaderboardEntry{{XP: 100}, {XP: 50}})

	assert.Equal(t, 100.0, slots[0].Entry.XP)
	assert.Equal(t, 50.0, slots[1].Entry.XP)
	assert.Equal(t, 0.0, slots[2].Entry.XP)
	assert.True(t, slots[2].Placeholder)
	assert.Equal(t, "pad-2", slots[2].Entry.ID)
	assert.Equal(t, leaderboard.MedalBronze, slots[2].Medal)
}

func TestPodiumOrderIsSecondFirstThird(t *testing.T) {
	order := leaderboard.PodiumOrder(leaderboard.Podium(board(3)))
	require.Len(t, order, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{order[0].Rank, order[1].Rank, order[2].Rank})
	assert.Equal(t, leaderboard.MedalGold, order[1].Medal)
}

func TestRankedCapsAtFifty(t *testing.T) {
	entries := board(60)
	rows := leaderboard.Ranked(entries)

	require.Len(t, rows, leaderboard.MaxRankedRows)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, entries[i].ID, row.Entry.ID)
		assert.Equal(t, leaderboard.RowVectors[i%len(leaderboard.RowVectors)], row.Vector)
	}
}

func TestRankedShortBoard(t *testing.T) {
	assert.Len(t, leaderboard.Ranked(board(4)), 4)
	assert.Empty(t, leaderboard.Ranked(nil))
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "alice", leaderboard.DisplayName(types.LeaderboardEntry{Username: "alice", DisplayName: "Alice"}, "x"))
	assert.Equal(t, "Alice", leaderboard.DisplayName(types.LeaderboardEntry{Username: "  ", DisplayName: "Alice"}, "x"))
	assert.Equal(t, "x", leaderboard.DisplayName(types.LeaderboardEntry{}, "x"))

	rows := leaderboard.Ranked([]types.LeaderboardEntry{{ID: "nameless"}})
	assert.Equal(t, leaderboard.AnonymousName, rows[0].Name)
}

func TestSelfRank(t *testing.T) {
	entries := board(5)
	entries[3].Address = "0xABC"

	t.Run("anonymous viewer has no row", func(t *testing.T) {
		_, ok := leaderboard.SelfRank(entries, access.Principal{})
		assert.False(t, ok)
	})

	t.Run("matched by id", func(t *testing.T) {
		row, ok := leaderboard.SelfRank(entries, access.Principal{UserID: "u2"})
		require.True(t, ok)
		assert.Equal(t, 3, row.Rank)
		assert.Equal(t, "user2", row.Name)
	})

	t.Run("matched by username ignoring case", func(t *testing.T) {
		row, ok := leaderboard.SelfRank(entries, access.Principal{Username: "USER4"})
		require.True(t, ok)
		assert.Equal(t, 5, row.Rank)
	})

	t.Run("matched by address", func(t *testing.T) {
		row, ok := leaderboard.SelfRank(entries, access.Principal{Address: "0xabc"})
		require.True(t, ok)
		assert.Equal(t, 4, row.Rank)
	})

	t.Run("not on the board", func(t *testing.T) {
		_, ok := leaderboard.SelfRank(entries, access.Principal{UserID: "missing"})
		assert.False(t, ok)
	})
}
