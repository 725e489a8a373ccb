package services

import (
	"context"

	"go.uber.org/zap"

	"nexuraPortal/internal/access"
	lb "nexuraPortal/internal/leaderboard"
	"nexuraPortal/internal/types/leaderboard"
)

type LeaderboardSource interface {
	FetchLeaderboard(ctx context.Context) (leaderboard.Leaderboard, error)
}

type LeaderboardView struct {
	Podium   [lb.PodiumSize]lb.Slot `json:"podium"`
	Ranked   []lb.Row               `json:"ranked"`
	SelfRank *lb.Row                `json:"selfRank,omitempty"`
	Total    int                    `json:"total"`
}

func (v LeaderboardView) Empty() bool {
	return v.Total == 0
}

type LeaderboardService struct {
	source LeaderboardSource
	logger *zap.Logger
}

func NewLeaderboardService(source LeaderboardSource, logger *zap.Logger) *LeaderboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaderboardService{source: source, logger: logger.Named("leaderboard")}
}

// View performs one fetch and derives the podium, ranked list and, for an
// identified viewer, their own row.
func (s *LeaderboardService) View(ctx context.Context, viewer access.Principal) (LeaderboardView, error) {
	board, err := s.source.FetchLeaderboard(ctx)
	if err != nil {
		return LeaderboardView{}, err
	}
	return DeriveLeaderboard(board.Entries, viewer), nil
}

func DeriveLeaderboard(entries []leaderboard.LeaderboardEntry, viewer access.Principal) LeaderboardView {
	v := LeaderboardView{
		Podium: lb.Podium(entries),
		Ranked: lb.Ranked(entries),
		Total:  len(entries),
	}
	if row, ok := lb.SelfRank(entries, viewer); ok {
		v.SelfRank = &row
	}
	return v
}
