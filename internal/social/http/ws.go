package http

import (
	"net/http"

	"github.com/upchain/social/internal/social/realtime"
	"github.com/upchain/social/pkg/httpx"
	"github.com/upchain/social/pkg/slogx"

	"github.com/gorilla/websocket"
)

// WSHandler upgrades authenticated requests and parks them in the hub.
type WSHandler struct {
	Hub      *realtime.Hub
	Upgrader websocket.Upgrader
}

// HandleConnect handles GET /v1/ws
//
//	@Summary		Open the realtime notification socket
//	@Description	Upgrades to a websocket delivering JSON frames of the form {event, data}.
//	@Tags			Realtime
//	@Security		BearerAuth
//	@Success		101	"Switching protocols"
//	@Failure		401	{object}	httpx.ErrorBody	"Invalid or missing session"
//	@Router			/v1/ws [get].
func (h *WSHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the handshake error.
		log.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	deregister := h.Hub.Register(userID, conn)
	defer deregister()

	log.Info("websocket connected", "user_id", userID)

	// The server only pushes; the read loop exists to notice the peer
	// going away and to drain control frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Info("websocket disconnected", "user_id", userID)
}
