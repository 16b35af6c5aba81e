package service

import (
	"context"
	"testing"

	"github.com/upchain/social/internal/social/domain"
	"github.com/stretchr/testify/require"
)

func newSocialService(t *testing.T) (*SocialService, *AuthService, *fakePusher) {
	t.Helper()

	st := newTestStore(t)
	auth, _ := newAuthService(t, st)
	p := &fakePusher{}
	return &SocialService{Store: st, Pusher: p}, auth, p
}

func TestToggleFollow(t *testing.T) {
	ctx := context.Background()

	t.Run("follow then unfollow round trips edge and notification", func(t *testing.T) {
		svc, auth, pusher := newSocialService(t)
		st := svc.Store

		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
		bob := registerUser(t, auth, "bob", "bob@example.com", "pw")

		view, following, err := svc.ToggleFollow(ctx, alice, bob)
		require.NoError(t, err)
		require.True(t, following)
		require.Equal(t, []string{bob}, view.Following)

		exists, err := st.Follows().Exists(ctx, alice, bob)
		require.NoError(t, err)
		require.True(t, exists)

		notifs, err := st.Notifications().ListByReceiver(ctx, bob)
		require.NoError(t, err)
		require.Len(t, notifs, 1)
		require.Equal(t, domain.NotificationFollowed, notifs[0].Type)

		view, following, err = svc.ToggleFollow(ctx, alice, bob)
		require.NoError(t, err)
		require.False(t, following)
		require.Empty(t, view.Following)

		exists, err = st.Follows().Exists(ctx, alice, bob)
		require.NoError(t, err)
		require.False(t, exists)

		// The persisted followed notification goes with the edge.
		notifs, err = st.Notifications().ListByReceiver(ctx, bob)
		require.NoError(t, err)
		require.Empty(t, notifs)

		events := pusher.all()
		require.Len(t, events, 2)
		require.Equal(t, bob, events[0].UserID)
		require.Equal(t, NotificationEventName, events[0].Event)

		first, ok := events[0].Payload.(domain.NotificationEvent)
		require.True(t, ok)
		require.Equal(t, domain.NotificationFollowed, first.Type)
		require.Equal(t, "alice", first.Actor.Username)

		second := events[1].Payload.(domain.NotificationEvent)
		require.Equal(t, domain.NotificationUnfollowed, second.Type)
	})

	t.Run("self follow is rejected", func(t *testing.T) {
		svc, auth, pusher := newSocialService(t)
		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

		_, _, err := svc.ToggleFollow(ctx, alice, alice)
		require.Equal(t, KindValidation, KindOf(err))
		require.Empty(t, pusher.all())
	})

	t.Run("unknown actor or target is not found", func(t *testing.T) {
		svc, auth, _ := newSocialService(t)
		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

		_, _, err := svc.ToggleFollow(ctx, alice, "missing")
		require.Equal(t, KindNotFound, KindOf(err))

		_, _, err = svc.ToggleFollow(ctx, "missing", alice)
		require.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("follower sets stay direction aware", func(t *testing.T) {
		svc, auth, _ := newSocialService(t)

		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
		bob := registerUser(t, auth, "bob", "bob@example.com", "pw")

		view, _, err := svc.ToggleFollow(ctx, alice, bob)
		require.NoError(t, err)
		require.Equal(t, []string{bob}, view.Following)
		require.Empty(t, view.Followers)

		view, _, err = svc.ToggleFollow(ctx, bob, alice)
		require.NoError(t, err)
		require.Equal(t, []string{alice}, view.Following)
		require.Equal(t, []string{alice}, view.Followers)
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()

	svc, auth, _ := newSocialService(t)
	alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
	bob := registerUser(t, auth, "bob", "bob@example.com", "pw")

	list, err := svc.Notifications(ctx, bob)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	_, _, err = svc.ToggleFollow(ctx, alice, bob)
	require.NoError(t, err)

	list, err = svc.Notifications(ctx, bob)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, alice, list[0].ActorID)
}
