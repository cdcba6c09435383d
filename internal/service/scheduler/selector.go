package scheduler

import (
	"math"
	"strings"

	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
)

// SelectResponder picks the next bot to reply.
//
// The bot that authored the newest comment is disqualified outright. Every
// other bot scores +2 per trigger keyword found in searchText (substring,
// case-insensitive, one match per keyword) plus a [0,1) jitter, and the
// highest score wins.
func SelectResponder(bots []bot.Bot, searchText string, comments []forum.Comment, r Rand) string {
	lastBotID := ""
	if len(comments) > 0 {
		lastBotID = comments[len(comments)-1].BotID
	}

	text := strings.ToLower(searchText)

	bestID := ""
	bestScore := math.Inf(-1)
	for _, b := range bots {
		score := -1.0
		if b.ID != lastBotID {
			score = keywordScore(b, text) + r.Float64()
		}
		if score > bestScore {
			bestScore = score
			bestID = b.ID
		}
	}
	return bestID
}

func keywordScore(b bot.Bot, text string) float64 {
	score := 0.0
	for _, keyword := range b.TriggerKeywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(keyword)) {
			score += 2
		}
	}
	return score
}
