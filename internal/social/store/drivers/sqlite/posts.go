package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/upchain/social/internal/social/domain"
)

type postsRepo struct {
	q querier
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO posts (id, author_id, caption, image_url, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.AuthorID, p.Caption, p.ImageURL, p.CreatedAt.UnixMilli())
	return mapConflict(err)
}

func (r *postsRepo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, author_id, caption, image_url, created_at
		FROM posts
		WHERE author_id = ?
		ORDER BY created_at DESC
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	var (
		p         domain.Post
		createdAt int64
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, author_id, caption, image_url, created_at
		FROM posts WHERE id = ?
	`, id).Scan(&p.ID, &p.AuthorID, &p.Caption, &p.ImageURL, &createdAt)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	p.CreatedAt = mapTime(createdAt)
	return p, nil
}

func collectPosts(rows *sql.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var (
			p         domain.Post
			createdAt int64
		)
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Caption, &p.ImageURL, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = mapTime(createdAt)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

type commentsRepo struct {
	q querier
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.PostID, c.AuthorID, c.Text, c.CreatedAt.UnixMilli())
	return mapConflict(err)
}

func (r *commentsRepo) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, post_id, author_id, text, created_at
		FROM comments
		WHERE post_id = ?
		ORDER BY created_at DESC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var (
			c         domain.Comment
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Text, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt = mapTime(createdAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

type savedRepo struct {
	q querier
}

func (r *savedRepo) Save(ctx context.Context, userID, postID string, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO saved_posts (user_id, post_id, created_at)
		VALUES (?, ?, ?)
	`, userID, postID, at.UnixMilli())
	return mapConflict(err)
}

func (r *savedRepo) ListSaved(ctx context.Context, userID string) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT p.id, p.author_id, p.caption, p.image_url, p.created_at
		FROM saved_posts s
		JOIN posts p ON p.id = s.post_id
		WHERE s.user_id = ?
		ORDER BY s.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}
