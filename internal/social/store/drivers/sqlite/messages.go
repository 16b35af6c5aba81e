package sqlite

import (
	"context"

	"github.com/upchain/social/internal/social/domain"
)

type conversationsRepo struct {
	q querier
}

func (r *conversationsRepo) CreateConversation(ctx context.Context, c domain.Conversation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO conversations (id, participant_a, participant_b, created_at)
		VALUES (?, ?, ?, ?)
	`, c.ID, c.ParticipantA, c.ParticipantB, c.CreatedAt.UnixMilli())
	return mapConflict(err)
}

func (r *conversationsRepo) GetByParticipants(ctx context.Context, participantA, participantB string) (domain.Conversation, error) {
	var (
		c         domain.Conversation
		createdAt int64
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, participant_a, participant_b, created_at
		FROM conversations
		WHERE participant_a = ? AND participant_b = ?
	`, participantA, participantB).Scan(&c.ID, &c.ParticipantA, &c.ParticipantB, &createdAt)
	if err != nil {
		return domain.Conversation{}, mapNotFound(err)
	}
	c.CreatedAt = mapTime(createdAt)
	return c, nil
}

type messagesRepo struct {
	q querier
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, sender_id, receiver_id, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.ConversationID, m.SenderID, m.ReceiverID, m.Text, m.CreatedAt.UnixMilli())
	return mapConflict(err)
}

func (r *messagesRepo) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, conversation_id, sender_id, receiver_id, text, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var (
			m         domain.Message
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.ReceiverID, &m.Text, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = mapTime(createdAt)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
