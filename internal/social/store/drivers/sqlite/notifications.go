package sqlite

import (
	"context"

	"github.com/upchain/social/internal/social/domain"
)

type notificationsRepo struct {
	q querier
}

func (r *notificationsRepo) Create(ctx context.Context, n domain.Notification) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO notifications (id, type, actor_id, receiver_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, n.ID, string(n.Type), n.ActorID, n.ReceiverID, n.CreatedAt.UnixMilli())
	return mapConflict(err)
}

func (r *notificationsRepo) DeleteFollowed(ctx context.Context, actorID, receiverID string) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM notifications
		WHERE actor_id = ? AND receiver_id = ? AND type = 'followed'
	`, actorID, receiverID)
	return err
}

func (r *notificationsRepo) ListByReceiver(ctx context.Context, receiverID string) ([]domain.Notification, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, type, actor_id, receiver_id, created_at
		FROM notifications
		WHERE receiver_id = ?
		ORDER BY created_at DESC
	`, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Notification
	for rows.Next() {
		var (
			n         domain.Notification
			typ       string
			createdAt int64
		)
		if err := rows.Scan(&n.ID, &typ, &n.ActorID, &n.ReceiverID, &createdAt); err != nil {
			return nil, err
		}
		n.Type = domain.NotificationType(typ)
		n.CreatedAt = mapTime(createdAt)
		list = append(list, n)
	}
	return list, rows.Err()
}
