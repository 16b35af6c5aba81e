package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/upchain/social/internal/social/domain"
	"github.com/upchain/social/internal/social/store"
	"github.com/upchain/social/pkg/idx"
)

// NotificationEventName is the websocket event carrying follow activity.
const NotificationEventName = "notification"

// Pusher delivers a realtime event to a user's live connection, dropping it
// silently when the user is offline.
type Pusher interface {
	Push(userID, event string, payload any)
}

// SocialService owns the follow graph and its notifications.
type SocialService struct {
	Store  store.Store
	Pusher Pusher
}

// ToggleFollow flips the actor's follow edge towards target. The edge and
// its notification row move in one transaction; the realtime push happens
// after commit and is fire and forget. Returns the actor's projection with
// fresh edge sets and whether the actor now follows the target.
func (s *SocialService) ToggleFollow(ctx context.Context, actorID, targetID string) (domain.UserView, bool, error) {
	if actorID == targetID {
		return domain.UserView{}, false, Validationf("you cannot follow or unfollow yourself")
	}

	actor, err := s.Store.Users().GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserView{}, false, NotFoundf("user not found")
		}
		return domain.UserView{}, false, fmt.Errorf("lookup actor: %w", err)
	}

	if _, err := s.Store.Users().GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserView{}, false, NotFoundf("user not found")
		}
		return domain.UserView{}, false, fmt.Errorf("lookup target: %w", err)
	}

	following, err := s.Store.Follows().Exists(ctx, actorID, targetID)
	if err != nil {
		return domain.UserView{}, false, fmt.Errorf("check edge: %w", err)
	}

	now := time.Now().UTC()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if following {
			if err := tx.Follows().Delete(ctx, actorID, targetID); err != nil {
				return fmt.Errorf("delete edge: %w", err)
			}
			return tx.Notifications().DeleteFollowed(ctx, actorID, targetID)
		}

		if err := tx.Follows().Create(ctx, actorID, targetID, now); err != nil {
			return fmt.Errorf("create edge: %w", err)
		}
		return tx.Notifications().Create(ctx, domain.Notification{
			ID:         idx.New().String(),
			Type:       domain.NotificationFollowed,
			ActorID:    actorID,
			ReceiverID: targetID,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.UserView{}, false, Internal("could not update follow state", err)
	}
	following = !following

	eventType := domain.NotificationUnfollowed
	if following {
		eventType = domain.NotificationFollowed
	}
	s.Pusher.Push(targetID, NotificationEventName, domain.NotificationEvent{
		Type:     eventType,
		Actor:    actor.View(),
		Receiver: targetID,
	})

	view, err := viewWithEdges(ctx, s.Store, actor)
	if err != nil {
		return domain.UserView{}, false, fmt.Errorf("load edges: %w", err)
	}
	return view, following, nil
}

// Notifications returns the user's persisted notifications, newest first.
func (s *SocialService) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	list, err := s.Store.Notifications().ListByReceiver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if list == nil {
		list = []domain.Notification{}
	}
	return list, nil
}
