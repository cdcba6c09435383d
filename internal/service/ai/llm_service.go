package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/yuehan/botboard/backend/internal/config"
	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
)

// Sampling settings per call site. Replies and topics want variety; the
// evaluator wants stable scores.
const (
	replyTemperature = 0.85
	replyMaxTokens   = 300
	topicTemperature = 0.9
	topicMaxTokens   = 500
	evalTemperature  = 0.3
	evalMaxTokens    = 200
)

// Service encapsulates all LLM-backed content generation.
type Service struct {
	chatModel model.ChatModel
	bots      bot.Store
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the AI service with a chat model built from config.
func NewService(ctx context.Context, bots bot.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(ctx, bots, cfg, chatModel)
}

// NewServiceWithModel creates the AI service around an existing chat model.
// Tests inject deterministic models here.
func NewServiceWithModel(ctx context.Context, bots bot.Store, cfg config.AIConfig, chatModel model.ChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		bots:      bots,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// ComposeReply generates one comment in the responder's voice, framed by its
// ally/rival relationships and the most recent comments on the post.
func (s *Service) ComposeReply(ctx context.Context, responder bot.Bot, post forum.Post, comments []forum.Comment, relations []bot.Relation) (string, error) {
	allies, rivals := s.relationNames(responder, relations)

	input := map[string]any{
		"system": buildReplySystemPrompt(responder, allies, rivals),
		"query":  buildReplyUserPrompt(responder, post, s.renderRecentComments(comments)),
	}

	response, err := s.chain.Invoke(ctx, input,
		compose.WithChatModelOption(model.WithTemperature(replyTemperature), model.WithMaxTokens(replyMaxTokens)))
	if err != nil {
		return "", fmt.Errorf("failed to run reply chain: %w", err)
	}

	log.Printf("[ai] composed reply post=%s bot=%s length=%d", post.ID, responder.ID, len(response.Content))
	return response.Content, nil
}

// ComposeTopic generates a new thread. With a preset topic, the returned title
// is always the preset's title regardless of what the model produced; without
// one, the model invents the topic and a missing title falls back to a
// placeholder.
func (s *Service) ComposeTopic(ctx context.Context, author bot.Bot, preset *forum.PresetTopic) (forum.TopicDraft, error) {
	input := map[string]any{
		"system": buildTopicSystemPrompt(author, preset),
		"query":  buildTopicUserPrompt(author, preset),
	}

	response, err := s.chain.Invoke(ctx, input,
		compose.WithChatModelOption(model.WithTemperature(topicTemperature), model.WithMaxTokens(topicMaxTokens)))
	if err != nil {
		return forum.TopicDraft{}, fmt.Errorf("failed to run topic chain: %w", err)
	}

	draft := parseTopicPayload(response.Content)
	if preset != nil {
		draft.Title = preset.Title
	} else {
		if draft.Title == "" {
			draft.Title = fallbackTitle
		}
		draft.Title = truncateRunes(draft.Title, maxTitleRunes)
	}

	log.Printf("[ai] composed topic bot=%s title=%q", author.ID, draft.Title)
	return draft, nil
}

// relationNames resolves a bot's outgoing edges to ally and rival names.
func (s *Service) relationNames(responder bot.Bot, relations []bot.Relation) (allies, rivals []string) {
	for _, rel := range relations {
		if rel.BotID != responder.ID {
			continue
		}
		target, ok := s.bots.FindByID(rel.TargetBotID)
		if !ok {
			continue
		}
		switch rel.Kind {
		case bot.KindAlly:
			allies = append(allies, target.Name)
		case bot.KindRival:
			rivals = append(rivals, target.Name)
		}
	}
	return allies, rivals
}

// renderRecentComments renders the last commentWindow comments as
// "Name: body" lines, oldest first.
func (s *Service) renderRecentComments(comments []forum.Comment) string {
	start := 0
	if len(comments) > commentWindow {
		start = len(comments) - commentWindow
	}

	lines := make([]string, 0, len(comments)-start)
	for _, comment := range comments[start:] {
		name := comment.BotID
		if b, ok := s.bots.FindByID(comment.BotID); ok {
			name = b.Name
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, comment.Content))
	}
	return joinLines(lines)
}
