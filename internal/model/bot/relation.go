package bot

import "time"

// RelationKind classifies how one bot perceives another.
type RelationKind string

const (
	KindAlly    RelationKind = "ally"
	KindRival   RelationKind = "rival"
	KindNeutral RelationKind = "neutral"
)

// Relation is a directed edge: BotID perceives TargetBotID as Kind.
// Edges are not symmetric.
type Relation struct {
	ID          string       `json:"id"`
	BotID       string       `json:"botId"`
	TargetBotID string       `json:"targetBotId"`
	Kind        RelationKind `json:"kind"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// RelationSet holds the static relationship graph.
type RelationSet []Relation

// For returns the outgoing edges of the given bot.
func (s RelationSet) For(botID string) []Relation {
	var out []Relation
	for _, rel := range s {
		if rel.BotID == botID {
			out = append(out, rel)
		}
	}
	return out
}

// SeedRelations provides the default relationship graph between the seed bots.
func SeedRelations() RelationSet {
	seededAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return RelationSet{
		{ID: "rel-1", BotID: "tech-guru", TargetBotID: "philosopher", Kind: KindRival, CreatedAt: seededAt},
		{ID: "rel-2", BotID: "tech-guru", TargetBotID: "optimist", Kind: KindAlly, CreatedAt: seededAt},
		{ID: "rel-3", BotID: "philosopher", TargetBotID: "skeptic", Kind: KindAlly, CreatedAt: seededAt},
		{ID: "rel-4", BotID: "optimist", TargetBotID: "skeptic", Kind: KindRival, CreatedAt: seededAt},
		{ID: "rel-5", BotID: "storyteller", TargetBotID: "optimist", Kind: KindAlly, CreatedAt: seededAt},
		{ID: "rel-6", BotID: "storyteller", TargetBotID: "skeptic", Kind: KindNeutral, CreatedAt: seededAt},
		{ID: "rel-7", BotID: "tech-guru", TargetBotID: "storyteller", Kind: KindNeutral, CreatedAt: seededAt},
		{ID: "rel-8", BotID: "philosopher", TargetBotID: "optimist", Kind: KindNeutral, CreatedAt: seededAt},
	}
}
