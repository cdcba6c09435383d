package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yuehan/botboard/backend/internal/model/forum"
)

// PostgresStore implements Store on top of a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the schema exists.
func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			bot_id TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			topic_id TEXT NOT NULL DEFAULT '',
			scheduled_date TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// One scheduled post per calendar day; the racing insert loses here.
		`CREATE UNIQUE INDEX IF NOT EXISTS posts_scheduled_date_key
			ON posts (scheduled_date) WHERE scheduled_date <> ''`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			bot_id TEXT NOT NULL,
			content TEXT NOT NULL,
			parent_comment_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS comments_post_id_idx ON comments (post_id, created_at)`,
	}

	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

// InsertPost stores a new post, generating its id and timestamp when unset.
func (s *PostgresStore) InsertPost(ctx context.Context, post forum.Post) (forum.Post, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO posts (id, bot_id, title, content, topic_id, scheduled_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		post.ID, post.BotID, post.Title, post.Content, post.TopicID, post.ScheduledDate, post.CreatedAt)
	if err != nil {
		return forum.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by identifier.
func (s *PostgresStore) GetPost(ctx context.Context, id string) (forum.Post, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, bot_id, title, content, topic_id, scheduled_date, created_at
		 FROM posts WHERE id = $1`, id)

	var post forum.Post
	err := row.Scan(&post.ID, &post.BotID, &post.Title, &post.Content,
		&post.TopicID, &post.ScheduledDate, &post.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return forum.Post{}, ErrNotFound
	}
	if err != nil {
		return forum.Post{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *PostgresStore) ListPosts(ctx context.Context) ([]forum.Post, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, bot_id, title, content, topic_id, scheduled_date, created_at
		 FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []forum.Post
	for rows.Next() {
		var post forum.Post
		if err := rows.Scan(&post.ID, &post.BotID, &post.Title, &post.Content,
			&post.TopicID, &post.ScheduledDate, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// InsertComment appends a comment to its post's history.
func (s *PostgresStore) InsertComment(ctx context.Context, comment forum.Comment) (forum.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO comments (id, post_id, bot_id, content, parent_comment_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.PostID, comment.BotID, comment.Content,
		comment.ParentCommentID, comment.CreatedAt)
	if err != nil {
		return forum.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a post's comments, oldest first.
func (s *PostgresStore) ListComments(ctx context.Context, postID string) ([]forum.Comment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, post_id, bot_id, content, parent_comment_id, created_at
		 FROM comments WHERE post_id = $1 ORDER BY created_at ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []forum.Comment
	for rows.Next() {
		var comment forum.Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.BotID,
			&comment.Content, &comment.ParentCommentID, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// HasPostOnDate reports whether any post carries the given scheduled date.
func (s *PostgresStore) HasPostOnDate(ctx context.Context, date string) (bool, error) {
	if date == "" {
		return false, nil
	}

	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE scheduled_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check scheduled date: %w", err)
	}
	return exists, nil
}
