package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
)

// EvalScores grades one generated comment, each dimension 0-10.
type EvalScores struct {
	Consistency float64 `json:"consistency"`
	Relevance   float64 `json:"relevance"`
	Engagement  float64 `json:"engagement"`
}

// Evaluation is the judge's verdict on a comment.
type Evaluation struct {
	CommentID string     `json:"commentId"`
	Scores    EvalScores `json:"scores"`
	Overall   float64    `json:"overall"`
	Feedback  string     `json:"feedback"`
}

const evalSystemPrompt = `You are an expert judge of AI forum-bot reply quality. Score the bot's comment and return JSON.

Dimensions (0-10 each):
1. consistency: does the comment match the bot's persona description
2. relevance: does the comment engage with the post's content
3. engagement: is the comment interesting enough to provoke discussion

Return format:
{
  "scores": {
    "consistency": <0-10>,
    "relevance": <0-10>,
    "engagement": <0-10>
  },
  "overall": <0-10 combined score>,
  "feedback": "<one short sentence of critique>"
}`

// EvaluateComment asks the model to judge a generated comment against its
// bot's persona and the post it replies to.
func (s *Service) EvaluateComment(ctx context.Context, commentID, postContent, commentContent, personality string) (Evaluation, error) {
	var query strings.Builder
	fmt.Fprintf(&query, "Bot persona: %s\n\n", personality)
	fmt.Fprintf(&query, "Post content: %s\n\n", postContent)
	fmt.Fprintf(&query, "Bot comment: %s\n\n", commentContent)
	query.WriteString("Evaluate the quality of this comment.")

	input := map[string]any{
		"system": evalSystemPrompt,
		"query":  query.String(),
	}

	response, err := s.chain.Invoke(ctx, input,
		compose.WithChatModelOption(model.WithTemperature(evalTemperature), model.WithMaxTokens(evalMaxTokens)))
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to run eval chain: %w", err)
	}

	evaluation := parseEvaluation(response.Content)
	evaluation.CommentID = commentID
	log.Printf("[ai] evaluated comment=%s overall=%.1f", commentID, evaluation.Overall)
	return evaluation, nil
}

// parseEvaluation tolerates malformed judge output: missing fields score zero.
func parseEvaluation(raw string) Evaluation {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var evaluation Evaluation
	if err := json.Unmarshal([]byte(cleaned), &evaluation); err != nil {
		return Evaluation{}
	}
	return evaluation
}
