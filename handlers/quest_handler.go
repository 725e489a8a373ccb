package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"nexuraPortal/internal/lifecycle"
	"nexuraPortal/internal/onetime"
	"nexuraPortal/services"
)

const questsFailure = "Failed to fetch quests"

type QuestHandler struct {
	questService *services.QuestService
	renderer     *Renderer
	logger       *zap.Logger
}

func NewQuestHandler(questService *services.QuestService, renderer *Renderer, logger *zap.Logger) *QuestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestHandler{
		questService: questService,
		renderer:     renderer,
		logger:       logger.Named("quests"),
	}
}

func (h *QuestHandler) load(r *http.Request) (lifecycle.Snapshot[[]services.QuestEntry], bool) {
	view, stop := lifecycle.Mount[[]services.QuestEntry](r.Context(), services.FailureMessage(questsFailure))
	defer stop()

	snap := view.Load(r.Context(), h.questService.ActiveQuests)
	if !view.Mounted() {
		h.logger.Debug("viewer left before quests loaded")
		return snap, false
	}
	return snap, true
}

// session returns the page session named in the query, or starts a new one.
func (h *QuestHandler) session(r *http.Request) uuid.UUID {
	if id, err := onetime.ParseSession(r.URL.Query().Get("session")); err == nil {
		return id
	}
	return h.questService.BeginSession()
}

// QuestsPage renders the active quests and the one-time list. The one-time
// list does not depend on the backend and is shown even when the fetch fails.
func (h *QuestHandler) QuestsPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.load(r)
	if !ok {
		return
	}
	session := h.session(r)

	code := http.StatusOK
	if snap.Phase == lifecycle.Failed {
		h.logger.Warn("quests unavailable", zap.String("message", snap.Message))
		code = http.StatusBadGateway
	}
	h.renderer.Render(w, code, "quests", Shell{
		Title:   "Quests",
		Nav:     "quests",
		Content: toQuestsPage(snap, h.questService.OneTime(session), session),
	})
}

func (h *QuestHandler) QuestDetailPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entry, found, err := h.questService.Find(r.Context(), id)
	if r.Context().Err() != nil {
		return
	}
	if err != nil {
		h.logger.Warn("quest lookup failed", zap.String("id", id), zap.Error(err))
		h.renderer.Render(w, http.StatusBadGateway, "quests", Shell{
			Title: "Quests",
			Nav:   "quests",
			Content: QuestsPage{
				Phase: lifecycle.Failed.String(),
				Error: services.FailureMessage(questsFailure)(err),
			},
		})
		return
	}
	if !found {
		h.renderer.NotFound(w, "Quest not found")
		return
	}

	detail := toQuestDetailPage(entry)
	h.renderer.Render(w, http.StatusOK, "quest_detail", Shell{
		Title:   detail.Card.Title,
		Nav:     "quests",
		Content: detail,
	})
}

// AdvanceOneTime moves a one-time task forward. The first press opens the
// task URL, the second claims the reward and returns to the quests page.
func (h *QuestHandler) AdvanceOneTime(w http.ResponseWriter, r *http.Request) {
	session, err := onetime.ParseSession(r.URL.Query().Get("session"))
	if err != nil {
		http.Error(w, "invalid session", http.StatusBadRequest)
		return
	}

	entry, _, err := h.questService.AdvanceOneTime(session, mux.Vars(r)["taskID"])
	if errors.Is(err, services.ErrUnknownTask) {
		h.renderer.NotFound(w, "Task not found")
		return
	}

	if entry.Status == onetime.Visited && entry.URL != "" {
		http.Redirect(w, r, entry.URL, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, QuestsPath+"?session="+session.String(), http.StatusSeeOther)
}

func (h *QuestHandler) GetQuests(w http.ResponseWriter, r *http.Request) {
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

func (h *QuestHandler) GetOneTime(w http.ResponseWriter, r *http.Request) {
	session, err := onetime.ParseSession(r.URL.Query().Get("session"))
	if err != nil {
		session = h.questService.BeginSession()
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"session": session.String(),
		"quests":  h.questService.OneTime(session),
	})
}

func (h *QuestHandler) PostOneTime(w http.ResponseWriter, r *http.Request) {
	session, err := onetime.ParseSession(r.URL.Query().Get("session"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session")
		return
	}

	entry, changed, err := h.questService.AdvanceOneTime(session, mux.Vars(r)["taskID"])
	if errors.Is(err, services.ErrUnknownTask) {
		respondWithError(w, http.StatusNotFound, "Task not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"session": session.String(),
		"quest":   entry,
		"changed": changed,
	})
}
