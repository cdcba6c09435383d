package storage

import (
	"context"
	"errors"

	"github.com/yuehan/botboard/backend/internal/model/forum"
)

var ErrNotFound = errors.New("record not found")

// Store persists posts and comments. The model is append-only: records are
// inserted once and never updated or deleted.
type Store interface {
	InsertPost(ctx context.Context, post forum.Post) (forum.Post, error)
	GetPost(ctx context.Context, id string) (forum.Post, error)
	ListPosts(ctx context.Context) ([]forum.Post, error)
	InsertComment(ctx context.Context, comment forum.Comment) (forum.Comment, error)
	ListComments(ctx context.Context, postID string) ([]forum.Comment, error)
	HasPostOnDate(ctx context.Context, date string) (bool, error)
}
