package domain

import "time"

// NotificationType enumerates the persisted notification kinds.
type NotificationType string

const (
	NotificationFollowed   NotificationType = "followed"
	NotificationUnfollowed NotificationType = "unfollowed"
	NotificationOther      NotificationType = "other"
)

// Notification references users by id but does not own them. At most one
// "followed" notification is outstanding per (actor, receiver) pair; the
// unfollow path deletes it in the same transaction that removes the edge.
type Notification struct {
	ID         string           `json:"_id"`
	Type       NotificationType `json:"type"`
	ActorID    string           `json:"user"`
	ReceiverID string           `json:"receiver"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// NotificationEvent is the realtime payload pushed to a live connection. The
// actor is embedded as a projection so the client can render without a
// follow-up fetch.
type NotificationEvent struct {
	Type     NotificationType `json:"type"`
	Actor    UserView         `json:"user"`
	Receiver string           `json:"receiver"`
}
