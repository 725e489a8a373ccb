package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"nexuraPortal/internal/lifecycle"
	"nexuraPortal/services"
)

const campaignsFailure = "Failed to fetch campaigns"

type CampaignHandler struct {
	campaignService *services.CampaignService
	renderer        *Renderer
	logger          *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, renderer *Renderer, logger *zap.Logger) *CampaignHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignHandler{
		campaignService: campaignService,
		renderer:        renderer,
		logger:          logger.Named("campaigns"),
	}
}

func (h *CampaignHandler) load(r *http.Request) (lifecycle.Snapshot[services.CampaignBoard], bool) {
	view, stop := lifecycle.Mount[services.CampaignBoard](r.Context(), services.FailureMessage(campaignsFailure))
	defer stop()

	snap := view.Load(r.Context(), h.campaignService.Board)
	if !view.Mounted() {
		h.logger.Debug("viewer left before campaigns loaded")
		return snap, false
	}
	return snap, true
}

// CampaignsPage renders the active and upcoming campaign grids.
func (h *CampaignHandler) CampaignsPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.load(r)
	if !ok {
		return
	}

	code := http.StatusOK
	if snap.Phase == lifecycle.Failed {
		h.logger.Warn("campaigns unavailable", zap.String("message", snap.Message))
		code = http.StatusBadGateway
	}
	h.renderer.Render(w, code, "campaigns", Shell{
		Title:   "Campaigns",
		Nav:     "campaigns",
		Content: toCampaignsPage(snap),
	})
}

// TasksPage shows the promotional tasks campaign. It never touches the backend.
func (h *CampaignHandler) TasksPage(w http.ResponseWriter, r *http.Request) {
	card := toCampaignCard(h.campaignService.TasksCard())
	h.renderer.Render(w, http.StatusOK, "campaign_tasks", Shell{
		Title:   card.Title,
		Nav:     "campaigns",
		Content: card,
	})
}

func (h *CampaignHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
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
