package sqlite

import (
	"context"
	"time"
)

type followsRepo struct {
	q querier
}

func (r *followsRepo) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM follows WHERE follower_id = ? AND followee_id = ?
	`, followerID, followeeID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *followsRepo) Create(ctx context.Context, followerID, followeeID string, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES (?, ?, ?)
	`, followerID, followeeID, at.UnixMilli())
	return mapConflict(err)
}

func (r *followsRepo) Delete(ctx context.Context, followerID, followeeID string) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM follows WHERE follower_id = ? AND followee_id = ?
	`, followerID, followeeID)
	return err
}

func (r *followsRepo) Following(ctx context.Context, userID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT followee_id FROM follows WHERE follower_id = ? ORDER BY created_at ASC
	`, userID)
}

func (r *followsRepo) Followers(ctx context.Context, userID string) ([]string, error) {
	return r.listIDs(ctx, `
		SELECT follower_id FROM follows WHERE followee_id = ? ORDER BY created_at ASC
	`, userID)
}

func (r *followsRepo) listIDs(ctx context.Context, query, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
