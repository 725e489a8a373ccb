package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuraPortal/internal/access"
	"nexuraPortal/internal/types/leaderboard"
)

type stubLeaderboard struct {
	board leaderboard.Leaderboard
	err   error
}

func (s stubLeaderboard) FetchLeaderboard(context.Context) (leaderboard.Leaderboard, error) {
	return s.board, s.err
}

func TestLeaderboardView(t *testing.T) {
	svc := NewLeaderboardService(stubLeaderboard{board: leaderboard.Leaderboard{Entries: []leaderboard.LeaderboardEntry{
		{ID: "a", Username: "alice", XP: 100, Level: 4},
		{ID: "b", Username: "bob", XP: 50, Level: 2},
	}}}, nil)

	v, err := svc.View(context.Background(), access.Principal{})
	require.NoError(t, err)

	assert.False(t, v.Empty())
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, 100.0, v.Podium[0].Entry.XP)
	assert.Equal(t, 50.0, v.Podium[1].Entry.XP)
	assert.True(t, v.Podium[2].Placeholder)
	assert.Len(t, v.Ranked, 2)
	assert.Nil(t, v.SelfRank, "anonymous viewers get no self rank")
}

func TestLeaderboardSelfRank(t *testing.T) {
	v := DeriveLeaderboard([]leaderboard.LeaderboardEntry{
		{ID: "a", Username: "alice", XP: 100},
		{ID: "b", Username: "bob", XP: 50},
	}, access.Principal{Username: "bob"})

	require.NotNil(t, v.SelfRank)
	assert.Equal(t, 2, v.SelfRank.Rank)
	assert.Equal(t, "bob", v.SelfRank.Name)
}

func TestLeaderboardEmpty(t *testing.T) {
	v := DeriveLeaderboard(nil, access.Principal{})
	assert.True(t, v.Empty())
	assert.Empty(t, v.Ranked)
	assert.True(t, v.Podium[0].Placeholder)
}
