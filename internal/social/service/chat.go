package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/upchain/social/internal/social/domain"
	"github.com/upchain/social/internal/social/store"
)

// ChatService reads direct-message history. Message creation belongs to the
// messaging service; this side only serves fetches.
type ChatService struct {
	Store store.Store
}

// Messages returns the conversation between requester and other, oldest
// first. No conversation yet means an empty list, not an error.
func (s *ChatService) Messages(ctx context.Context, requesterID, otherID string) ([]domain.Message, error) {
	a, b := domain.CanonicalPair(requesterID, otherID)

	conv, err := s.Store.Conversations().GetByParticipants(ctx, a, b)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []domain.Message{}, nil
		}
		return nil, fmt.Errorf("lookup conversation: %w", err)
	}

	msgs, err := s.Store.Messages().ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}
