package realtime

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		deregister := hub.Register(userID, conn)
		t.Cleanup(deregister)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// Registration happens in the handler goroutine.
	require.Eventually(t, func() bool { return hub.Online(userID) },
		time.Second, 10*time.Millisecond)

	return conn
}

func TestHubPushDeliversFrame(t *testing.T) {
	hub := NewHub(slog.Default())
	conn := newTestConn(t, hub, "alice")

	hub.Push("alice", "notification", map[string]string{"type": "followed"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var got struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, "notification", got.Event)
	require.Equal(t, "followed", got.Data["type"])
}

func TestHubPushOfflineIsNoop(t *testing.T) {
	t.Parallel()

	hub := NewHub(slog.Default())
	require.False(t, hub.Online("ghost"))

	// Must not panic or block.
	hub.Push("ghost", "notification", map[string]string{"type": "followed"})
}

func TestHubDeregisterRemovesConnection(t *testing.T) {
	hub := NewHub(slog.Default())

	upgrader := websocket.Upgrader{}
	var deregister func()
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		deregister = hub.Register("bob", conn)
		close(done)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	<-done
	require.True(t, hub.Online("bob"))

	deregister()
	require.False(t, hub.Online("bob"))

	// Idempotent.
	deregister()
	require.False(t, hub.Online("bob"))
}
