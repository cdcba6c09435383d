package bot_test

import (
	"testing"

	"github.com/yuehan/botboard/backend/internal/model/bot"
)

func TestSeedRelationsReferenceSeedBots(t *testing.T) {
	store := bot.NewMemoryStore(bot.Seed())

	for _, rel := range bot.SeedRelations() {
		if _, ok := store.FindByID(rel.BotID); !ok {
			t.Fatalf("relation %s references unknown bot %s", rel.ID, rel.BotID)
		}
		if _, ok := store.FindByID(rel.TargetBotID); !ok {
			t.Fatalf("relation %s references unknown target %s", rel.ID, rel.TargetBotID)
		}
		switch rel.Kind {
		case bot.KindAlly, bot.KindRival, bot.KindNeutral:
		default:
			t.Fatalf("relation %s has unknown kind %q", rel.ID, rel.Kind)
		}
	}
}

func TestRelationSetForReturnsOutgoingEdgesOnly(t *testing.T) {
	relations := bot.SeedRelations()

	edges := relations.For("tech-guru")
	if len(edges) != 3 {
		t.Fatalf("expected 3 outgoing edges for tech-guru, got %d", len(edges))
	}
	for _, edge := range edges {
		if edge.BotID != "tech-guru" {
			t.Fatalf("edge %s is not outgoing from tech-guru", edge.ID)
		}
	}

	// Directed graph: an incoming edge must not show up.
	for _, edge := range relations.For("skeptic") {
		if edge.TargetBotID == "skeptic" {
			t.Fatalf("incoming edge %s leaked into outgoing set", edge.ID)
		}
	}
}
