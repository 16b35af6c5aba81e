package http

import (
	"net/http"

	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/pkg/httpx"
)

// SocialHandler handles the follow graph and notification reads.
type SocialHandler struct {
	SocialService *service.SocialService
}

// HandleToggleFollow handles POST /v1/users/{id}/follow
//
//	@Summary		Follow or unfollow a user
//	@Description	Toggles the caller's follow edge towards {id} and notifies the target in realtime when online.
//	@Tags			Social
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Target user id"
//	@Success		200	{object}	followResponse	"Caller record with fresh edge sets and the resulting state"
//	@Failure		400	{object}	httpx.ErrorBody	"Cannot follow yourself"
//	@Failure		404	{object}	httpx.ErrorBody	"User not found"
//	@Failure		500	{object}	httpx.ErrorBody	"Persistence failure"
//	@Router			/v1/users/{id}/follow [post].
func (h *SocialHandler) HandleToggleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	view, following, err := h.SocialService.ToggleFollow(ctx, userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, followResponse{
		Success:   true,
		User:      view,
		Following: following,
	})
}

// HandleNotifications handles GET /v1/notifications
//
//	@Summary		List the caller's notifications, newest first
//	@Tags			Social
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notificationsResponse
//	@Router			/v1/notifications [get].
func (h *SocialHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	list, err := h.SocialService.Notifications(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notificationsResponse{Success: true, Notifications: list})
}
