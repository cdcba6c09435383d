package post

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
	"github.com/yuehan/botboard/backend/internal/service/scheduler"
	"github.com/yuehan/botboard/backend/internal/storage"
	"github.com/yuehan/botboard/backend/pkg/utils"
)

// ReplyComposer generates one bot comment; implemented by the AI service.
type ReplyComposer interface {
	ComposeReply(ctx context.Context, responder bot.Bot, post forum.Post, comments []forum.Comment, relations []bot.Relation) (string, error)
}

// Handler serves post and comment routes, including the interactive
// "generate one reply" trigger.
type Handler struct {
	store     storage.Store
	bots      bot.Store
	relations bot.RelationSet
	composer  ReplyComposer
	rand      scheduler.Rand
}

// New creates the post handler. A nil composer disables reply generation.
func New(store storage.Store, bots bot.Store, relations bot.RelationSet, composer ReplyComposer) *Handler {
	return &Handler{
		store:     store,
		bots:      bots,
		relations: relations,
		composer:  composer,
		rand:      scheduler.SystemRand(),
	}
}

// WithRand overrides the selector's random source; used by tests.
func (h *Handler) WithRand(r scheduler.Rand) *Handler {
	h.rand = r
	return h
}

// RegisterRoutes registers post routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/posts", h.handleListPosts)
	r.Get("/posts/{postID}", h.handleGetPost)
	r.Get("/posts/{postID}/comments", h.handleListComments)
	r.Post("/posts/{postID}/comments", h.handleGenerateComment)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, posts)
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	found, err := h.store.GetPost(r.Context(), postID)
	if errors.Is(err, storage.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, found)
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	comments, err := h.store.ListComments(r.Context(), postID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, comments)
}

// handleGenerateComment picks the next responder for the post and persists
// one generated top-level reply.
func (h *Handler) handleGenerateComment(w http.ResponseWriter, r *http.Request) {
	if h.composer == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "reply generation unavailable")
		return
	}

	ctx := r.Context()
	postID := chi.URLParam(r, "postID")

	found, err := h.store.GetPost(ctx, postID)
	if errors.Is(err, storage.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	comments, err := h.store.ListComments(ctx, postID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	botID := scheduler.SelectResponder(h.bots.List(), searchText(found, comments), comments, h.rand)
	responder, ok := h.bots.FindByID(botID)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "bot not found")
		return
	}

	content, err := h.composer.ComposeReply(ctx, responder, found, comments, h.relations.For(botID))
	if err != nil {
		log.Printf("[post] reply generation failed post=%s bot=%s: %v", postID, botID, err)
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	comment, err := h.store.InsertComment(ctx, forum.Comment{
		PostID:  postID,
		BotID:   botID,
		Content: content,
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"comment": comment,
		"bot": map[string]string{
			"id":     responder.ID,
			"name":   responder.Name,
			"avatar": responder.Avatar,
		},
	})
}

// searchText concatenates the post title, body, and all comment bodies for
// keyword matching.
func searchText(post forum.Post, comments []forum.Comment) string {
	parts := make([]string, 0, len(comments)+2)
	parts = append(parts, post.Title, post.Content)
	for _, comment := range comments {
		parts = append(parts, comment.Content)
	}
	return strings.Join(parts, " ")
}
