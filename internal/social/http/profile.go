package http

import (
	"net/http"

	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/pkg/httpx"
)

// maxPhotoSize caps the multipart form held in memory during a profile edit.
const maxPhotoSize = 10 << 20

// ProfileHandler handles profile reads and mutations.
type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet handles GET /v1/users/{id}/profile
//
//	@Summary		Fetch a profile
//	@Description	Returns the profile with follower/following sets and materialized posts and saved posts.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	profileResponse
//	@Failure		404	{object}	httpx.ErrorBody	"User not found"
//	@Router			/v1/users/{id}/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.ProfileService.GetProfile(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse{Success: true, User: profile})
}

// HandleEdit handles PUT /v1/users/profile
//
//	@Summary		Edit the caller's profile
//	@Description	Multipart form; bio, gender and photo are each optional and only provided fields change.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			bio		formData	string	false	"New bio"
//	@Param			gender	formData	string	false	"New gender"
//	@Param			photo	formData	file	false	"New profile picture"
//	@Success		200		{object}	userResponse
//	@Failure		404		{object}	httpx.ErrorBody	"User not found"
//	@Router			/v1/users/profile [put].
func (h *ProfileHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var edit service.ProfileEdit
	if vals, ok := r.MultipartForm.Value["bio"]; ok && len(vals) > 0 {
		edit.Bio = &vals[0]
	}
	if vals, ok := r.MultipartForm.Value["gender"]; ok && len(vals) > 0 {
		edit.Gender = &vals[0]
	}

	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		edit.Photo = &service.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	view, err := h.ProfileService.EditProfile(ctx, userID, edit)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse{Success: true, User: view})
}

// HandleRemovePhoto handles POST /v1/users/profile/remove-photo
//
//	@Summary		Reset the profile picture to the default
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	userResponse
//	@Failure		404	{object}	httpx.ErrorBody	"User not found"
//	@Router			/v1/users/profile/remove-photo [post].
func (h *ProfileHandler) HandleRemovePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	view, err := h.ProfileService.RemovePhoto(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse{Success: true, User: view})
}

// HandleSuggested handles GET /v1/users/suggested
//
//	@Summary		List suggested users
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	usersResponse
//	@Router			/v1/users/suggested [get].
func (h *ProfileHandler) HandleSuggested(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	views, err := h.ProfileService.SuggestedUsers(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usersResponse{Success: true, Users: views})
}

// HandlePremium handles POST /v1/users/premium
//
//	@Summary		Upgrade the caller to premium
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	userResponse
//	@Failure		404	{object}	httpx.ErrorBody	"User not found"
//	@Router			/v1/users/premium [post].
func (h *ProfileHandler) HandlePremium(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	view, err := h.ProfileService.UpgradeToPremium(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse{Success: true, User: view})
}
