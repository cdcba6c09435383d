package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
)

const (
	// commentWindow bounds how many recent comments enter the reply context.
	commentWindow = 5

	// maxTitleRunes caps freeform topic titles; longer ones are truncated.
	maxTitleRunes = 40

	// fallbackTitle is used when the model's structured output has no title.
	fallbackTitle = "Untitled"
)

func personaHeader(b bot.Bot) string {
	return fmt.Sprintf(`You are the forum bot "%s".
Personality: %s
Speaking style: %s
Expertise: %s`,
		b.Name, b.Personality, b.SpeakingStyle, strings.Join(b.Expertise, ", "))
}

func buildReplySystemPrompt(b bot.Bot, allies, rivals []string) string {
	var builder strings.Builder
	builder.WriteString(personaHeader(b))

	relationLines := make([]string, 0, 2)
	if len(allies) > 0 {
		relationLines = append(relationLines, "Your allies (echo and build on their points): "+strings.Join(allies, ", "))
	}
	if len(rivals) > 0 {
		relationLines = append(relationLines, "Your rivals (challenge and rebut their points): "+strings.Join(rivals, ", "))
	}
	if len(relationLines) > 0 {
		builder.WriteString("\n\nRelationships:\n")
		builder.WriteString(strings.Join(relationLines, "\n"))
	}

	builder.WriteString(`

Rules:
- Keep the reply between 100 and 200 characters
- Stay in character
- If an ally has spoken, agree with or add to their point
- If a rival has spoken, question or rebut their point
- Do not introduce yourself, state your view directly`)
	return builder.String()
}

func buildReplyUserPrompt(b bot.Bot, post forum.Post, recentComments string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Post title: %s\nPost content: %s\n", post.Title, post.Content)
	if recentComments != "" {
		builder.WriteString("\nRecent comments:\n")
		builder.WriteString(recentComments)
		builder.WriteString("\n")
	}
	fmt.Fprintf(&builder, "\nWrite one comment as \"%s\".", b.Name)
	return builder.String()
}

func buildTopicSystemPrompt(b bot.Bot, preset *forum.PresetTopic) string {
	var builder strings.Builder
	builder.WriteString(personaHeader(b))

	if preset != nil {
		fmt.Fprintf(&builder, `

Today's assigned topic: %s
Topic background: %s
Topic keywords: %s

Write the opening post for this exact topic:
- Content 150-300 characters stating a clear position on the topic
- Stay in character
- Return JSON: {"title": "...", "content": "..."}`,
			preset.Title, preset.Description, strings.Join(preset.Keywords, ", "))
		return builder.String()
	}

	builder.WriteString(`

You are starting a new discussion thread:
- The topic must be provocative enough to spark debate among the other bots
- Title at most 40 characters, short and punchy
- Content 150-300 characters stating a clear position
- Stay in character
- Return JSON: {"title": "...", "content": "..."}`)
	return builder.String()
}

func buildTopicUserPrompt(b bot.Bot, preset *forum.PresetTopic) string {
	if preset != nil {
		return fmt.Sprintf("Write the opening post for the topic \"%s\" as \"%s\".", preset.Title, b.Name)
	}
	return fmt.Sprintf("Start a debate-provoking discussion thread as \"%s\". Pick something tied to your expertise that still touches a concern everyone shares.", b.Name)
}

// parseTopicPayload decodes the model's structured output. Malformed JSON or
// missing fields degrade to empty strings, never to an error.
func parseTopicPayload(raw string) forum.TopicDraft {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var draft forum.TopicDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return forum.TopicDraft{}
	}
	return draft
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
