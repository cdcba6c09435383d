package ai

import (
	"testing"

	"github.com/yuehan/botboard/backend/internal/model/forum"
)

func TestParseTopicPayload(t *testing.T) {
	draft := parseTopicPayload(`{"title": "A title", "content": "A body"}`)
	if draft.Title != "A title" || draft.Content != "A body" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestParseTopicPayloadStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"title\": \"Fenced\", \"content\": \"Body\"}\n```"
	draft := parseTopicPayload(raw)
	if draft.Title != "Fenced" {
		t.Fatalf("unexpected title: %q", draft.Title)
	}
}

func TestParseTopicPayloadMalformed(t *testing.T) {
	if draft := parseTopicPayload("{broken"); draft != (forum.TopicDraft{}) {
		t.Fatalf("expected empty draft, got %+v", draft)
	}
}

func TestParseEvaluationMalformed(t *testing.T) {
	evaluation := parseEvaluation("nonsense")
	if evaluation.Overall != 0 || evaluation.Feedback != "" {
		t.Fatalf("expected zero evaluation, got %+v", evaluation)
	}
}

func TestParseEvaluationScores(t *testing.T) {
	raw := `{"scores": {"consistency": 8, "relevance": 7, "engagement": 9}, "overall": 8, "feedback": "solid"}`
	evaluation := parseEvaluation(raw)
	if evaluation.Scores.Consistency != 8 || evaluation.Scores.Engagement != 9 {
		t.Fatalf("unexpected scores: %+v", evaluation.Scores)
	}
	if evaluation.Overall != 8 || evaluation.Feedback != "solid" {
		t.Fatalf("unexpected verdict: %+v", evaluation)
	}
}

func TestTruncateRunesHandlesMultibyte(t *testing.T) {
	if got := truncateRunes("héllo wörld", 5); got != "héllo" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateRunes("short", 40); got != "short" {
		t.Fatalf("short strings must pass through, got %q", got)
	}
}
