package service

import (
	"context"
	"testing"
	"time"

	"github.com/upchain/social/internal/social/domain"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified user and mails a code", func(t *testing.T) {
		st := newTestStore(t)
		svc, mail := newAuthService(t, st)

		view, err := svc.Register(ctx, "alice", "Alice@Example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, "alice", view.Username)
		require.False(t, view.IsVerified)
		require.Equal(t, domain.DefaultProfilePicture, view.ProfilePicture)

		// Response must not leak the email.
		require.Empty(t, view.Email)

		sent := mail.last(t)
		require.Equal(t, "alice@example.com", sent.To)
		require.Len(t, sent.Code, 6)

		stored, err := st.Users().GetUserByID(ctx, view.ID)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", stored.Email)
		require.NotEqual(t, "hunter22", stored.PasswordHash)
		require.NotNil(t, stored.OTPCode)
		require.Equal(t, sent.Code, *stored.OTPCode)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		for _, tc := range [][3]string{
			{"", "a@b.c", "pw"},
			{"alice", "", "pw"},
			{"alice", "a@b.c", ""},
		} {
			_, err := svc.Register(ctx, tc[0], tc[1], tc[2])
			require.Equal(t, KindValidation, KindOf(err))
		}
	})

	t.Run("email conflict wins over username conflict", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		registerUser(t, svc, "alice", "alice@example.com", "pw")

		_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
		require.Equal(t, KindConflict, KindOf(err))
		require.Contains(t, err.Error(), "email already registered")

		_, err = svc.Register(ctx, "alice", "other@example.com", "pw")
		require.Equal(t, KindConflict, KindOf(err))
		require.Contains(t, err.Error(), "username already taken")
	})

	t.Run("mailer failure does not lose the account", func(t *testing.T) {
		st := newTestStore(t)
		svc, mail := newAuthService(t, st)
		mail.err = errBoom

		view, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
		require.NoError(t, err)

		_, err = st.Users().GetUserByID(ctx, view.ID)
		require.NoError(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("works with username or email and returns posts", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		id := registerUser(t, svc, "alice", "alice@example.com", "hunter22")
		require.NoError(t, st.Posts().CreatePost(ctx, domain.Post{
			ID: "p1", AuthorID: id, Caption: "hi", CreatedAt: time.Now().UTC(),
		}))

		view, token, err := svc.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, "alice@example.com", view.Email)
		require.Len(t, view.Posts, 1)

		_, token2, err := svc.Login(ctx, "alice@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, token2)
	})

	t.Run("token carries the session claims", func(t *testing.T) {
		st := newTestStore(t)
		signer, verifier := newTestSigner(t)
		svc := &AuthService{
			Store:  st,
			Mailer: &fakeMailer{},
			Signer: signer,
			Issuer: "social-test",
		}

		id := registerUser(t, svc, "alice", "alice@example.com", "pw")

		_, token, err := svc.Login(ctx, "alice", "pw")
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, id, claims.Subject)
		require.Equal(t, "alice", claims.Username)
	})

	t.Run("same generic error for unknown user and bad password", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		registerUser(t, svc, "alice", "alice@example.com", "hunter22")

		_, _, err := svc.Login(ctx, "nobody", "hunter22")
		require.Equal(t, KindAuth, KindOf(err))
		msgUnknown := err.Error()

		_, _, err = svc.Login(ctx, "alice", "wrong")
		require.Equal(t, KindAuth, KindOf(err))
		require.Equal(t, msgUnknown, err.Error())
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("correct code verifies and clears otp state", func(t *testing.T) {
		st := newTestStore(t)
		svc, mail := newAuthService(t, st)

		id := registerUser(t, svc, "alice", "alice@example.com", "pw")
		code := mail.last(t).Code

		require.NoError(t, svc.VerifyOTP(ctx, "alice@example.com", code))

		u, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.True(t, u.IsVerified)
		require.Nil(t, u.OTPCode)
	})

	t.Run("wrong code, unknown email and expired code all fail alike", func(t *testing.T) {
		st := newTestStore(t)
		svc, mail := newAuthService(t, st)

		id := registerUser(t, svc, "alice", "alice@example.com", "pw")
		code := mail.last(t).Code

		err := svc.VerifyOTP(ctx, "alice@example.com", "000000")
		require.Equal(t, KindAuth, KindOf(err))

		err = svc.VerifyOTP(ctx, "ghost@example.com", code)
		require.Equal(t, KindAuth, KindOf(err))

		// Force the stored code past its expiry.
		require.NoError(t, st.Users().SetOTP(ctx, id, code, time.Now().Add(-time.Minute)))
		err = svc.VerifyOTP(ctx, "alice@example.com", code)
		require.Equal(t, KindAuth, KindOf(err))
	})
}

func TestResendOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a fresh code", func(t *testing.T) {
		st := newTestStore(t)
		svc, mail := newAuthService(t, st)

		id := registerUser(t, svc, "alice", "alice@example.com", "pw")
		first := mail.last(t).Code

		require.NoError(t, svc.ResendOTP(ctx, id))
		second := mail.last(t).Code

		u, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, u.OTPCode)
		require.Equal(t, second, *u.OTPCode)

		// Codes are one-shot random secrets; a repeat would be a bug in
		// generation.
		require.NotEqual(t, first, second)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		err := svc.ResendOTP(ctx, "missing")
		require.Equal(t, KindNotFound, KindOf(err))
	})
}
