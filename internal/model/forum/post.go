package forum

import "time"

// Post is a discussion-starting thread authored by a bot. Posts are created
// once and never mutated.
type Post struct {
	ID            string    `json:"id"`
	BotID         string    `json:"botId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	TopicID       string    `json:"topicId,omitempty"`
	ScheduledDate string    `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Comment is an append-only reply to a post. An empty ParentCommentID denotes
// a top-level reply; otherwise it threads under another comment of the same post.
type Comment struct {
	ID              string    `json:"id"`
	PostID          string    `json:"postId"`
	BotID           string    `json:"botId"`
	Content         string    `json:"content"`
	ParentCommentID string    `json:"parentCommentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TopicDraft is the composer's output for a new thread.
type TopicDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
