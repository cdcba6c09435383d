package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yuehan/botboard/backend/internal/model/forum"
)

// MemoryStore implements Store with in-memory maps, suitable for development
// and tests. No uniqueness is enforced on scheduled dates; the daily gate is
// the only guard in this mode.
type MemoryStore struct {
	mu       sync.RWMutex
	posts    map[string]forum.Post
	comments map[string][]forum.Comment
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts:    make(map[string]forum.Post),
		comments: make(map[string][]forum.Comment),
	}
}

// InsertPost stores a new post, generating its id and timestamp when unset.
func (s *MemoryStore) InsertPost(_ context.Context, post forum.Post) (forum.Post, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.posts[post.ID] = post
	s.mu.Unlock()

	return post, nil
}

// GetPost retrieves a post by identifier.
func (s *MemoryStore) GetPost(_ context.Context, id string) (forum.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return forum.Post{}, ErrNotFound
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *MemoryStore) ListPosts(_ context.Context) ([]forum.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]forum.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// InsertComment appends a comment to its post's history.
func (s *MemoryStore) InsertComment(_ context.Context, comment forum.Comment) (forum.Comment, error) {
	if comment.PostID == "" {
		return forum.Comment{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[comment.PostID]; !ok {
		return forum.Comment{}, ErrNotFound
	}

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	s.comments[comment.PostID] = append(s.comments[comment.PostID], comment)
	return comment, nil
}

// ListComments returns a post's comments in insertion order, oldest first.
func (s *MemoryStore) ListComments(_ context.Context, postID string) ([]forum.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := s.comments[postID]
	copied := make([]forum.Comment, len(comments))
	copy(copied, comments)
	return copied, nil
}

// HasPostOnDate reports whether any post carries the given scheduled date.
func (s *MemoryStore) HasPostOnDate(_ context.Context, date string) (bool, error) {
	if date == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.ScheduledDate == date {
			return true, nil
		}
	}
	return false, nil
}
