package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/yuehan/botboard/backend/internal/config"
	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
)

// stubChatModel answers with canned content and records every prompt it saw.
type stubChatModel struct {
	content string
	err     error
	calls   [][]*schema.Message
}

func (m *stubChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.calls = append(m.calls, input)
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.content, nil), nil
}

func (m *stubChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func (m *stubChatModel) BindTools(_ []*schema.ToolInfo) error { return nil }

func newTestService(t *testing.T, chatModel *stubChatModel) *Service {
	t.Helper()
	svc, err := NewServiceWithModel(context.Background(), bot.NewMemoryStore(bot.Seed()), config.AIConfig{}, chatModel)
	if err != nil {
		t.Fatalf("NewServiceWithModel err: %v", err)
	}
	return svc
}

// lastPrompts returns the system and user prompt of the most recent call.
func lastPrompts(t *testing.T, chatModel *stubChatModel) (system, user string) {
	t.Helper()
	if len(chatModel.calls) == 0 {
		t.Fatal("no model calls recorded")
	}
	messages := chatModel.calls[len(chatModel.calls)-1]
	for _, message := range messages {
		switch message.Role {
		case schema.System:
			system = message.Content
		case schema.User:
			user = message.Content
		}
	}
	return system, user
}

func mustFind(t *testing.T, bots bot.Store, id string) bot.Bot {
	t.Helper()
	b, ok := bots.FindByID(id)
	if !ok {
		t.Fatalf("seed bot %s missing", id)
	}
	return b
}

func TestComposeTopicPresetTitleAlwaysWins(t *testing.T) {
	chatModel := &stubChatModel{content: `{"title": "Something else entirely", "content": "Generated body"}`}
	svc := newTestService(t, chatModel)

	preset := &forum.PresetTopic{
		ID:          "topic-001",
		Title:       "AI will replace jobs",
		Description: "A discussion about AI and employment",
		Keywords:    []string{"AI", "jobs"},
	}

	author := mustFind(t, svc.bots, "tech-guru")
	draft, err := svc.ComposeTopic(context.Background(), author, preset)
	if err != nil {
		t.Fatalf("ComposeTopic err: %v", err)
	}
	if draft.Title != preset.Title {
		t.Fatalf("expected preset title, got %q", draft.Title)
	}
	if draft.Content != "Generated body" {
		t.Fatalf("unexpected content: %q", draft.Content)
	}
}

func TestComposeTopicPresetPromptEmbedsTopic(t *testing.T) {
	chatModel := &stubChatModel{content: `{"title": "x", "content": "y"}`}
	svc := newTestService(t, chatModel)

	preset := &forum.PresetTopic{
		ID:          "topic-001",
		Title:       "AI will replace jobs",
		Description: "A discussion about AI and employment",
		Keywords:    []string{"automation", "labor"},
	}

	author := mustFind(t, svc.bots, "philosopher")
	if _, err := svc.ComposeTopic(context.Background(), author, preset); err != nil {
		t.Fatalf("ComposeTopic err: %v", err)
	}

	system, user := lastPrompts(t, chatModel)
	if !strings.Contains(system, preset.Title) {
		t.Fatal("system prompt missing preset title")
	}
	if !strings.Contains(system, preset.Description) {
		t.Fatal("system prompt missing preset description")
	}
	if !strings.Contains(system, preset.Keywords[0]) {
		t.Fatal("system prompt missing preset keywords")
	}
	if !strings.Contains(user, preset.Title) {
		t.Fatal("user prompt missing preset title")
	}
}

func TestComposeTopicFreeformFallbackTitle(t *testing.T) {
	chatModel := &stubChatModel{content: `{"content": "Body without a title"}`}
	svc := newTestService(t, chatModel)

	author := mustFind(t, svc.bots, "optimist")
	draft, err := svc.ComposeTopic(context.Background(), author, nil)
	if err != nil {
		t.Fatalf("ComposeTopic err: %v", err)
	}
	if draft.Title != "Untitled" {
		t.Fatalf("expected placeholder title, got %q", draft.Title)
	}
	if draft.Content != "Body without a title" {
		t.Fatalf("unexpected content: %q", draft.Content)
	}
}

func TestComposeTopicFreeformTruncatesLongTitle(t *testing.T) {
	longTitle := strings.Repeat("a", 60)
	chatModel := &stubChatModel{content: fmt.Sprintf(`{"title": %q, "content": "c"}`, longTitle)}
	svc := newTestService(t, chatModel)

	author := mustFind(t, svc.bots, "skeptic")
	draft, err := svc.ComposeTopic(context.Background(), author, nil)
	if err != nil {
		t.Fatalf("ComposeTopic err: %v", err)
	}
	if got := len([]rune(draft.Title)); got != 40 {
		t.Fatalf("expected title truncated to 40 runes, got %d", got)
	}
}

func TestComposeTopicMalformedOutputDoesNotError(t *testing.T) {
	chatModel := &stubChatModel{content: "this is not json at all"}
	svc := newTestService(t, chatModel)

	author := mustFind(t, svc.bots, "storyteller")
	draft, err := svc.ComposeTopic(context.Background(), author, nil)
	if err != nil {
		t.Fatalf("ComposeTopic err: %v", err)
	}
	if draft.Title != "Untitled" {
		t.Fatalf("expected placeholder title, got %q", draft.Title)
	}
	if draft.Content != "" {
		t.Fatalf("expected empty content, got %q", draft.Content)
	}
}

func TestComposeReplyWindowsLastFiveComments(t *testing.T) {
	chatModel := &stubChatModel{content: "a reply"}
	svc := newTestService(t, chatModel)

	comments := make([]forum.Comment, 0, 7)
	for i := 1; i <= 7; i++ {
		comments = append(comments, forum.Comment{
			ID:      fmt.Sprintf("c%d", i),
			PostID:  "p1",
			BotID:   "optimist",
			Content: fmt.Sprintf("comment number %d", i),
		})
	}

	responder := mustFind(t, svc.bots, "skeptic")
	post := forum.Post{ID: "p1", BotID: "tech-guru", Title: "title", Content: "content"}
	if _, err := svc.ComposeReply(context.Background(), responder, post, comments, nil); err != nil {
		t.Fatalf("ComposeReply err: %v", err)
	}

	_, user := lastPrompts(t, chatModel)
	for i := 1; i <= 2; i++ {
		if strings.Contains(user, fmt.Sprintf("comment number %d", i)) {
			t.Fatalf("comment %d should have been truncated out of the window", i)
		}
	}
	lastIdx := -1
	for i := 3; i <= 7; i++ {
		idx := strings.Index(user, fmt.Sprintf("comment number %d", i))
		if idx < 0 {
			t.Fatalf("comment %d missing from the window", i)
		}
		if idx < lastIdx {
			t.Fatalf("comment %d out of chronological order", i)
		}
		lastIdx = idx
	}
}

func TestComposeReplyRelationFraming(t *testing.T) {
	chatModel := &stubChatModel{content: "a reply"}
	svc := newTestService(t, chatModel)

	responder := mustFind(t, svc.bots, "tech-guru")
	post := forum.Post{ID: "p1", BotID: "optimist", Title: "title", Content: "content"}
	relations := bot.SeedRelations().For("tech-guru")

	if _, err := svc.ComposeReply(context.Background(), responder, post, nil, relations); err != nil {
		t.Fatalf("ComposeReply err: %v", err)
	}

	system, _ := lastPrompts(t, chatModel)
	if !strings.Contains(system, "Your allies") || !strings.Contains(system, "Optimist") {
		t.Fatal("system prompt missing ally framing")
	}
	if !strings.Contains(system, "Your rivals") || !strings.Contains(system, "Philosopher") {
		t.Fatal("system prompt missing rival framing")
	}
	// Neutral edges carry no guidance.
	if strings.Contains(system, "Storyteller") {
		t.Fatal("neutral relation leaked into the framing")
	}
}

func TestComposeReplyNoRelationsOmitsFramingBlock(t *testing.T) {
	chatModel := &stubChatModel{content: "a reply"}
	svc := newTestService(t, chatModel)

	responder := mustFind(t, svc.bots, "skeptic")
	post := forum.Post{ID: "p1", BotID: "optimist", Title: "title", Content: "content"}

	if _, err := svc.ComposeReply(context.Background(), responder, post, nil, nil); err != nil {
		t.Fatalf("ComposeReply err: %v", err)
	}

	system, _ := lastPrompts(t, chatModel)
	if strings.Contains(system, "Relationships:") {
		t.Fatal("relationship block present without any edges")
	}
}

func TestComposeReplyCollaboratorFailurePropagates(t *testing.T) {
	chatModel := &stubChatModel{err: errors.New("model down")}
	svc := newTestService(t, chatModel)

	responder := mustFind(t, svc.bots, "skeptic")
	post := forum.Post{ID: "p1", BotID: "optimist", Title: "title", Content: "content"}

	if _, err := svc.ComposeReply(context.Background(), responder, post, nil, nil); err == nil {
		t.Fatal("expected collaborator failure to propagate")
	}
}
