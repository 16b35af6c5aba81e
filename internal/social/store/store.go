package store

import (
	"context"
	"errors"
	"time"

	"github.com/upchain/social/internal/social/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Follows() Follows
	Notifications() Notifications
	Posts() Posts
	Comments() Comments
	Saved() Saved
	Conversations() Conversations
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists on a username or email collision.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByIdentifier matches either the username or the email column,
	// used during login.
	GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error)

	// UpdateProfile overwrites bio, gender and profile picture and bumps
	// updated_at.
	UpdateProfile(ctx context.Context, userID, bio, gender, picture string) error

	// SetOTP stores a pending verification code and its expiry.
	SetOTP(ctx context.Context, userID, code string, expiresAt time.Time) error

	// MarkVerified clears the OTP fields and flags the user verified.
	MarkVerified(ctx context.Context, userID string) error

	// SetPremium flags the user premium until the given time.
	SetPremium(ctx context.Context, userID string, expiresAt time.Time) error

	// ListSuggested returns all users except excludeID. When
	// excludeFollowed is set, users excludeID already follows are omitted
	// as well.
	ListSuggested(ctx context.Context, excludeID string, excludeFollowed bool) ([]domain.User, error)

	// ClearExpiredOTPs is housekeeping: drops verification codes past
	// their expiry.
	ClearExpiredOTPs(ctx context.Context, now time.Time) error

	// DowngradeExpiredPremium is housekeeping: clears the premium flag on
	// users whose premium window has lapsed.
	DowngradeExpiredPremium(ctx context.Context, now time.Time) error
}

type Follows interface {
	// Exists reports whether follower currently follows followee.
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)

	// Create inserts the (follower, followee) edge.
	Create(ctx context.Context, followerID, followeeID string, at time.Time) error

	// Delete removes the (follower, followee) edge.
	Delete(ctx context.Context, followerID, followeeID string) error

	// Following returns the ids the user follows, oldest edge first.
	Following(ctx context.Context, userID string) ([]string, error)

	// Followers returns the ids following the user, oldest edge first.
	Followers(ctx context.Context, userID string) ([]string, error)
}

type Notifications interface {
	Create(ctx context.Context, n domain.Notification) error

	// DeleteFollowed removes the outstanding "followed" notification for
	// the (actor, receiver) pair, if any.
	DeleteFollowed(ctx context.Context, actorID, receiverID string) error

	// ListByReceiver returns the receiver's notifications, newest first.
	ListByReceiver(ctx context.Context, receiverID string) ([]domain.Notification, error)
}

type Posts interface {
	CreatePost(ctx context.Context, p domain.Post) error

	// ListByAuthor returns the author's posts, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)

	GetPostByID(ctx context.Context, id string) (domain.Post, error)
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) error

	// ListByPost returns the post's comments, newest first.
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

type Saved interface {
	// Save bookmarks a post for the user.
	Save(ctx context.Context, userID, postID string, at time.Time) error

	// ListSaved returns the user's saved posts, most recently saved first.
	ListSaved(ctx context.Context, userID string) ([]domain.Post, error)
}

type Conversations interface {
	CreateConversation(ctx context.Context, c domain.Conversation) error

	// GetByParticipants looks up the conversation for a canonical pair.
	GetByParticipants(ctx context.Context, participantA, participantB string) (domain.Conversation, error)
}

type Messages interface {
	CreateMessage(ctx context.Context, m domain.Message) error

	// ListByConversation returns the conversation's messages, oldest
	// first.
	ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error)
}
