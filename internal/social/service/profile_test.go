package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/upchain/social/internal/social/domain"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (*ProfileService, *AuthService, *fakeUploader) {
	t.Helper()

	st := newTestStore(t)
	auth, _ := newAuthService(t, st)
	up := &fakeUploader{url: "https://cdn.example.com/avatars/new.png"}
	return &ProfileService{Store: st, Uploader: up}, auth, up
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("materializes posts, saved posts and comments", func(t *testing.T) {
		svc, auth, _ := newProfileService(t)
		st := svc.Store

		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
		bob := registerUser(t, auth, "bob", "bob@example.com", "pw")

		now := time.Now().UTC().Truncate(time.Millisecond)
		require.NoError(t, st.Posts().CreatePost(ctx, domain.Post{
			ID: "p1", AuthorID: alice, Caption: "mine", CreatedAt: now,
		}))
		require.NoError(t, st.Comments().CreateComment(ctx, domain.Comment{
			ID: "c1", PostID: "p1", AuthorID: bob, Text: "nice", CreatedAt: now,
		}))
		require.NoError(t, st.Posts().CreatePost(ctx, domain.Post{
			ID: "p2", AuthorID: bob, Caption: "bobs", CreatedAt: now,
		}))
		require.NoError(t, st.Saved().Save(ctx, alice, "p2", now))
		require.NoError(t, st.Follows().Create(ctx, bob, alice, now))

		profile, err := svc.GetProfile(ctx, alice)
		require.NoError(t, err)

		require.Equal(t, "alice", profile.Username)
		require.Empty(t, profile.Email)
		require.Equal(t, []string{bob}, profile.Followers)

		require.Len(t, profile.Posts, 1)
		require.Equal(t, "alice", profile.Posts[0].Author.Username)
		require.Len(t, profile.Posts[0].Comments, 1)
		require.Equal(t, "bob", profile.Posts[0].Comments[0].Author.Username)

		require.Len(t, profile.Saved, 1)
		require.Equal(t, "bob", profile.Saved[0].Author.Username)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		svc, _, _ := newProfileService(t)

		_, err := svc.GetProfile(ctx, "missing")
		require.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestEditProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites only provided fields", func(t *testing.T) {
		svc, auth, _ := newProfileService(t)
		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

		bio := "hello"
		view, err := svc.EditProfile(ctx, alice, ProfileEdit{Bio: &bio})
		require.NoError(t, err)
		require.Equal(t, "hello", view.Bio)
		require.Equal(t, domain.DefaultProfilePicture, view.ProfilePicture)

		gender := "f"
		view, err = svc.EditProfile(ctx, alice, ProfileEdit{Gender: &gender})
		require.NoError(t, err)
		require.Equal(t, "hello", view.Bio) // untouched
		require.Equal(t, "f", view.Gender)
	})

	t.Run("uploads the photo and stores its url", func(t *testing.T) {
		svc, auth, up := newProfileService(t)
		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

		view, err := svc.EditProfile(ctx, alice, ProfileEdit{Photo: &PhotoUpload{
			Filename:    "me.png",
			ContentType: "image/png",
			Body:        strings.NewReader("not really a png"),
		}})
		require.NoError(t, err)
		require.Equal(t, up.url, view.ProfilePicture)
	})

	t.Run("upload failure surfaces as internal", func(t *testing.T) {
		svc, auth, up := newProfileService(t)
		up.err = errBoom
		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

		_, err := svc.EditProfile(ctx, alice, ProfileEdit{Photo: &PhotoUpload{
			Filename: "me.png", Body: strings.NewReader("x"),
		}})
		require.Equal(t, KindInternal, KindOf(err))
	})
}

func TestRemovePhoto(t *testing.T) {
	ctx := context.Background()

	svc, auth, _ := newProfileService(t)
	alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

	bio := "keep me"
	_, err := svc.EditProfile(ctx, alice, ProfileEdit{
		Bio: &bio,
		Photo: &PhotoUpload{
			Filename: "me.png", Body: strings.NewReader("x"),
		},
	})
	require.NoError(t, err)

	view, err := svc.RemovePhoto(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultProfilePicture, view.ProfilePicture)
	require.Equal(t, "keep me", view.Bio)
}

func TestUpgradeToPremium(t *testing.T) {
	ctx := context.Background()

	svc, auth, _ := newProfileService(t)
	svc.PremiumDuration = 48 * time.Hour
	alice := registerUser(t, auth, "alice", "alice@example.com", "pw")

	before := time.Now()
	view, err := svc.UpgradeToPremium(ctx, alice)
	require.NoError(t, err)
	require.True(t, view.IsPremium)
	require.NotNil(t, view.PremiumExpiresAt)
	require.WithinDuration(t, before.Add(48*time.Hour), *view.PremiumExpiresAt, time.Minute)

	_, err = svc.UpgradeToPremium(ctx, "missing")
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestSuggestedUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes the requester and strips credentials", func(t *testing.T) {
		svc, auth, _ := newProfileService(t)
		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
		registerUser(t, auth, "bob", "bob@example.com", "pw")

		views, err := svc.SuggestedUsers(ctx, alice)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, "bob", views[0].Username)
		require.Empty(t, views[0].Email)
	})

	t.Run("optionally hides already followed users", func(t *testing.T) {
		svc, auth, _ := newProfileService(t)
		svc.SuggestExcludeFollowed = true

		alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
		bob := registerUser(t, auth, "bob", "bob@example.com", "pw")
		registerUser(t, auth, "carol", "carol@example.com", "pw")

		require.NoError(t, svc.Store.Follows().Create(ctx, alice, bob, time.Now()))

		views, err := svc.SuggestedUsers(ctx, alice)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, "carol", views[0].Username)
	})
}
