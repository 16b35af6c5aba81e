package service

import (
	"context"
	"testing"
	"time"

	"github.com/upchain/social/internal/social/domain"
	"github.com/upchain/social/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestChatMessages(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	auth, _ := newAuthService(t, st)
	svc := &ChatService{Store: st}

	alice := registerUser(t, auth, "alice", "alice@example.com", "pw")
	bob := registerUser(t, auth, "bob", "bob@example.com", "pw")

	t.Run("no conversation means empty list", func(t *testing.T) {
		msgs, err := svc.Messages(ctx, alice, bob)
		require.NoError(t, err)
		require.NotNil(t, msgs)
		require.Empty(t, msgs)
	})

	t.Run("returns history oldest first regardless of direction", func(t *testing.T) {
		a, b := domain.CanonicalPair(alice, bob)
		conv := domain.Conversation{
			ID:           idx.New().String(),
			ParticipantA: a,
			ParticipantB: b,
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, st.Conversations().CreateConversation(ctx, conv))

		base := time.Now().UTC().Truncate(time.Millisecond)
		require.NoError(t, st.Messages().CreateMessage(ctx, domain.Message{
			ID: "m1", ConversationID: conv.ID,
			SenderID: alice, ReceiverID: bob,
			Text: "hi", CreatedAt: base,
		}))
		require.NoError(t, st.Messages().CreateMessage(ctx, domain.Message{
			ID: "m2", ConversationID: conv.ID,
			SenderID: bob, ReceiverID: alice,
			Text: "hey", CreatedAt: base.Add(time.Second),
		}))

		msgs, err := svc.Messages(ctx, alice, bob)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		require.Equal(t, "hi", msgs[0].Text)
		require.Equal(t, "hey", msgs[1].Text)

		// Same thread viewed from the other side.
		reversed, err := svc.Messages(ctx, bob, alice)
		require.NoError(t, err)
		require.Equal(t, msgs, reversed)
	})
}
