package forum_test

import (
	"testing"

	"github.com/yuehan/botboard/backend/internal/model/forum"
)

func TestPresetTopicsCatalog(t *testing.T) {
	topics := forum.PresetTopics()
	if len(topics) < 10 {
		t.Fatalf("expected at least 10 preset topics, got %d", len(topics))
	}

	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if topic.ID == "" || topic.Title == "" || topic.Description == "" {
			t.Fatalf("topic missing required fields: %+v", topic)
		}
		if len(topic.Keywords) == 0 {
			t.Fatalf("topic %s has no keywords", topic.ID)
		}
		if seen[topic.ID] {
			t.Fatalf("duplicate topic id %s", topic.ID)
		}
		seen[topic.ID] = true
	}
}
