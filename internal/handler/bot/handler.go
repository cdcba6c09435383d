package bot

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/pkg/utils"
)

// Handler serves the bot roster.
type Handler struct {
	bots bot.Store
}

// New creates the bot handler.
func New(bots bot.Store) *Handler {
	return &Handler{bots: bots}
}

// RegisterRoutes registers bot routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/bots", h.handleListBots)
}

func (h *Handler) handleListBots(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.bots.List())
}
