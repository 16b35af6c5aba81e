package socialsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeServer serves login plus a messages endpoint whose behavior can be
// flipped between test phases.
type fakeServer struct {
	*httptest.Server

	fail     atomic.Bool
	messages atomic.Value // []Message
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	fs.messages.Store([]Message{})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req["password"] != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Msg: "incorrect email or password"})
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-token", Path: "/"})
		_ = json.NewEncoder(w).Encode(loginResponse{
			Success: true,
			User:    LoginUser{User: User{ID: "u1", Username: req["identifier"]}},
			Token:   "session-token",
		})
	})
	mux.HandleFunc("GET /v1/chats/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		// The session must present the cookie set at login.
		if c, err := r.Cookie("token"); err != nil || c.Value != "session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Msg: "user not authenticated"})
			return
		}

		if fs.fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Msg: "internal server error"})
			return
		}

		_ = json.NewEncoder(w).Encode(messagesResponse{
			Success:  true,
			Messages: fs.messages.Load().([]Message),
		})
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func login(t *testing.T, fs *fakeServer) *Session {
	t.Helper()

	session, err := NewSDKClient(fs.URL).Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	return session
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	fs := newFakeServer(t)

	_, err := NewSDKClient(fs.URL).Login(context.Background(), "alice", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "incorrect email or password", apiErr.Msg)
}

func TestFetchMessagesReplacesCacheOnSuccess(t *testing.T) {
	fs := newFakeServer(t)
	session := login(t, fs)

	require.Empty(t, session.Messages("bob"))

	fs.messages.Store([]Message{
		{ID: "m1", SenderID: "bob", ReceiverID: "u1", Text: "hi", CreatedAt: time.Now().UTC()},
	})

	got := session.FetchMessages(context.Background(), "bob")
	require.Len(t, got, 1)
	require.Equal(t, "hi", got[0].Text)

	fs.messages.Store([]Message{
		{ID: "m1", SenderID: "bob", ReceiverID: "u1", Text: "hi"},
		{ID: "m2", SenderID: "u1", ReceiverID: "bob", Text: "hey"},
	})

	got = session.FetchMessages(context.Background(), "bob")
	require.Len(t, got, 2)
	require.Len(t, session.Messages("bob"), 2)
}

func TestFetchMessagesKeepsCacheOnFailure(t *testing.T) {
	fs := newFakeServer(t)
	session := login(t, fs)

	fs.messages.Store([]Message{
		{ID: "m1", SenderID: "bob", ReceiverID: "u1", Text: "hi"},
	})
	require.Len(t, session.FetchMessages(context.Background(), "bob"), 1)

	// Server starts failing; the stale copy must survive.
	fs.fail.Store(true)

	got := session.FetchMessages(context.Background(), "bob")
	require.Len(t, got, 1)
	require.Equal(t, "hi", got[0].Text)

	// And recovery picks up the fresh list again.
	fs.fail.Store(false)
	fs.messages.Store([]Message{
		{ID: "m1", Text: "hi"}, {ID: "m2", Text: "hey"},
	})
	require.Len(t, session.FetchMessages(context.Background(), "bob"), 2)
}

func TestFetchMessagesCachesPerConversation(t *testing.T) {
	fs := newFakeServer(t)
	session := login(t, fs)

	fs.messages.Store([]Message{{ID: "m1", Text: "for bob"}})
	require.Len(t, session.FetchMessages(context.Background(), "bob"), 1)

	fs.messages.Store([]Message{{ID: "m2", Text: "a"}, {ID: "m3", Text: "b"}})
	require.Len(t, session.FetchMessages(context.Background(), "carol"), 2)

	// Bob's cache is untouched by Carol's fetch.
	require.Len(t, session.Messages("bob"), 1)
}
