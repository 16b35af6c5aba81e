package http

import (
	"net/http"

	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/pkg/httpx"
)

// ChatHandler serves conversation history.
type ChatHandler struct {
	ChatService *service.ChatService
}

// HandleMessages handles GET /v1/chats/{id}/messages
//
//	@Summary		Fetch the conversation with another user
//	@Description	Messages between the caller and {id}, oldest first. No conversation yet yields an empty list.
//	@Tags			Chat
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Other participant's user id"
//	@Success		200	{object}	messagesResponse
//	@Router			/v1/chats/{id}/messages [get].
func (h *ChatHandler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	msgs, err := h.ChatService.Messages(ctx, userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, messagesResponse{Success: true, Messages: msgs})
}
