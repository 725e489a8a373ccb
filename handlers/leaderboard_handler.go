package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"nexuraPortal/internal/access"
	"nexuraPortal/internal/lifecycle"
	"nexuraPortal/services"
)

const leaderboardFailure = "Failed to load leaderboard"

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
	renderer           *Renderer
	logger             *zap.Logger
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService, renderer *Renderer, logger *zap.Logger) *LeaderboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		renderer:           renderer,
		logger:             logger.Named("leaderboard"),
	}
}

func (h *LeaderboardHandler) load(r *http.Request) (lifecycle.Snapshot[services.LeaderboardView], bool) {
	viewer := access.FromContext(r.Context())
	view, stop := lifecycle.Mount[services.LeaderboardView](r.Context(), services.FailureMessage(leaderboardFailure))
	defer stop()

	snap := view.Load(r.Context(), func(ctx context.Context) (services.LeaderboardView, error) {
		return h.leaderboardService.View(ctx, viewer)
	})
	if !view.Mounted() {
		h.logger.Debug("viewer left before leaderboard loaded")
		return snap, false
	}
	return snap, true
}

func (h *LeaderboardHandler) LeaderboardPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.load(r)
	if !ok {
		return
	}

	code := http.StatusOK
	if snap.Phase == lifecycle.Failed {
		h.logger.Warn("leaderboard unavailable", zap.String("message", snap.Message))
		code = http.StatusBadGateway
	}
	h.renderer.Render(w, code, "leaderboard", Shell{
		Title:   "Leaderboard",
		Nav:     "leaderboard",
		Content: toLeaderboardPage(snap),
	})
}

func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.load(r)
	if !ok {
		return
	}
	if snap.Phase == lifecycle.Failed {
		respondWithError(w, http.StatusBadGateway, snap.Message)
		return
	}
	respondWithJSON(w, http.StatusOK, snap.Data)
}
