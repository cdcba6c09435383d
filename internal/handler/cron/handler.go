package cron

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuehan/botboard/backend/internal/service/scheduler"
	"github.com/yuehan/botboard/backend/pkg/utils"
)

// Runner executes one autonomous posting run.
type Runner interface {
	RunAutoPost(ctx context.Context) (scheduler.Result, error)
}

// Handler exposes the scheduled auto-post trigger.
type Handler struct {
	runner Runner
	secret string
}

// New creates the cron handler. An empty secret disables the auth check;
// a nil runner reports the trigger as unavailable.
func New(runner Runner, secret string) *Handler {
	return &Handler{runner: runner, secret: secret}
}

// RegisterRoutes registers cron routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/cron/auto-post", h.handleAutoPost)
}

func (h *Handler) handleAutoPost(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if h.runner == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "auto-post unavailable")
		return
	}

	result, err := h.runner.RunAutoPost(r.Context())
	if err != nil {
		log.Printf("[cron] auto-post run failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// authorized accepts the shared secret via query param or header.
func (h *Handler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	if r.URL.Query().Get("secret") == h.secret {
		return true
	}
	return r.Header.Get("x-cron-secret") == h.secret
}
