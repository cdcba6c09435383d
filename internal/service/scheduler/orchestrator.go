package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yuehan/botboard/backend/internal/model/bot"
	"github.com/yuehan/botboard/backend/internal/model/forum"
	"github.com/yuehan/botboard/backend/internal/storage"
)

// ReasonAlreadyPosted is reported when the daily gate short-circuits a run.
const ReasonAlreadyPosted = "already_posted_today"

// Composer produces LLM-generated forum content. Implemented by the AI
// service; stubbed in tests.
type Composer interface {
	ComposeTopic(ctx context.Context, author bot.Bot, preset *forum.PresetTopic) (forum.TopicDraft, error)
	ComposeReply(ctx context.Context, responder bot.Bot, post forum.Post, comments []forum.Comment, relations []bot.Relation) (string, error)
}

// Result reports the outcome of one autonomous posting run.
type Result struct {
	Success    bool   `json:"success"`
	Reason     string `json:"reason,omitempty"`
	PostID     string `json:"postId,omitempty"`
	BotName    string `json:"botName,omitempty"`
	TopicID    string `json:"topicId,omitempty"`
	ReplyCount int    `json:"replyCount"`
}

// Orchestrator runs the end-to-end autonomous posting flow: daily gate,
// poster selection, topic generation, and the sequential reply fan-out.
type Orchestrator struct {
	store     storage.Store
	bots      bot.Store
	relations bot.RelationSet
	topics    forum.Catalog
	composer  Composer
	rand      Rand
	now       func() time.Time
}

// New wires an orchestrator with the default random source and clock.
func New(store storage.Store, bots bot.Store, relations bot.RelationSet, topics forum.Catalog, composer Composer) *Orchestrator {
	return &Orchestrator{
		store:     store,
		bots:      bots,
		relations: relations,
		topics:    topics,
		composer:  composer,
		rand:      SystemRand(),
		now:       time.Now,
	}
}

// WithRand overrides the random source; used by tests.
func (o *Orchestrator) WithRand(r Rand) *Orchestrator {
	o.rand = r
	return o
}

// WithClock overrides the clock; used by tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// RunAutoPost performs one scheduled posting run. A duplicate day terminates
// early with ReasonAlreadyPosted and no writes. Post persistence failures and
// composer failures abort the run; a single comment persistence failure only
// drops that reply.
func (o *Orchestrator) RunAutoPost(ctx context.Context) (Result, error) {
	today := DateString(o.now())

	exists, err := o.store.HasPostOnDate(ctx, today)
	if err != nil {
		return Result{}, fmt.Errorf("daily check failed: %w", err)
	}
	if exists {
		return Result{Success: false, Reason: ReasonAlreadyPosted}, nil
	}

	roster := o.bots.List()
	if len(roster) == 0 {
		return Result{}, fmt.Errorf("bot roster is empty")
	}
	poster := roster[o.rand.IntN(len(roster))]

	var preset *forum.PresetTopic
	topicID := ""
	if len(o.topics) > 0 {
		picked := o.topics[o.rand.IntN(len(o.topics))]
		preset = &picked
		topicID = picked.ID
	}

	draft, err := o.composer.ComposeTopic(ctx, poster, preset)
	if err != nil {
		return Result{}, fmt.Errorf("topic generation failed: %w", err)
	}

	post, err := o.store.InsertPost(ctx, forum.Post{
		BotID:         poster.ID,
		Title:         draft.Title,
		Content:       draft.Content,
		TopicID:       topicID,
		ScheduledDate: today,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to create post: %w", err)
	}

	responders := o.pickResponders(roster, poster.ID)

	// Each responder sees the replies accumulated so far in this run, so the
	// thread reads as one conversation rather than isolated takes.
	accumulated := make([]forum.Comment, 0, len(responders))
	for _, responder := range responders {
		content, err := o.composer.ComposeReply(ctx, responder, post, accumulated, o.relations.For(responder.ID))
		if err != nil {
			return Result{}, fmt.Errorf("reply generation failed for bot %s: %w", responder.ID, err)
		}

		comment, err := o.store.InsertComment(ctx, forum.Comment{
			PostID:  post.ID,
			BotID:   responder.ID,
			Content: content,
		})
		if err != nil {
			log.Printf("[scheduler] dropping reply from bot=%s: %v", responder.ID, err)
			continue
		}
		accumulated = append(accumulated, comment)
	}

	log.Printf("[scheduler] auto-post complete post=%s poster=%s replies=%d", post.ID, poster.ID, len(accumulated))
	return Result{
		Success:    true,
		PostID:     post.ID,
		BotName:    poster.Name,
		TopicID:    topicID,
		ReplyCount: len(accumulated),
	}, nil
}

// pickResponders shuffles the non-poster bots and takes 2 or 3 of them.
func (o *Orchestrator) pickResponders(roster []bot.Bot, posterID string) []bot.Bot {
	others := make([]bot.Bot, 0, len(roster)-1)
	for _, b := range roster {
		if b.ID != posterID {
			others = append(others, b)
		}
	}

	o.rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	count := 2 + o.rand.IntN(2)
	if count > len(others) {
		count = len(others)
	}
	return others[:count]
}
