package eval

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuehan/botboard/backend/internal/service/ai"
	"github.com/yuehan/botboard/backend/pkg/utils"
)

// Evaluator judges a generated comment; implemented by the AI service.
type Evaluator interface {
	EvaluateComment(ctx context.Context, commentID, postContent, commentContent, personality string) (ai.Evaluation, error)
}

// Handler exposes comment-quality evaluation.
type Handler struct {
	evaluator Evaluator
}

// New creates the eval handler. A nil evaluator disables the endpoint.
func New(evaluator Evaluator) *Handler {
	return &Handler{evaluator: evaluator}
}

// RegisterRoutes registers eval routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/eval", h.handleEvaluate)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if h.evaluator == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "evaluation unavailable")
		return
	}

	var payload struct {
		CommentID      string `json:"commentId"`
		PostContent    string `json:"postContent"`
		CommentContent string `json:"commentContent"`
		BotPersonality string `json:"botPersonality"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.PostContent == "" || payload.CommentContent == "" {
		utils.RespondError(w, http.StatusBadRequest, "postContent and commentContent are required")
		return
	}

	evaluation, err := h.evaluator.EvaluateComment(r.Context(),
		payload.CommentID, payload.PostContent, payload.CommentContent, payload.BotPersonality)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, evaluation)
}
