package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/pkg/httpx"
	"github.com/upchain/social/pkg/jwtx"
	"github.com/upchain/social/pkg/slogx"
)

// AuthHandler handles registration, login and email verification.
type AuthHandler struct {
	AuthService *service.AuthService
	SessionTTL  time.Duration
}

func (h *AuthHandler) sessionTTL() time.Duration {
	if h.SessionTTL > 0 {
		return h.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an unverified account and emails a 6-digit verification code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"Registration fields"
//	@Success		201		{object}	userResponse	"Sanitized user record"
//	@Failure		400		{object}	httpx.ErrorBody	"Missing fields"
//	@Failure		409		{object}	httpx.ErrorBody	"Email or username taken"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse{Success: true, User: view})
}

type loginRequest struct {
	// Identifier takes either the username or the email; Email is accepted
	// as an alias for older clients.
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Authenticates by username or email, sets the session cookie and returns the token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginResponse	"User record with posts and the session token"
//	@Failure		401		{object}	httpx.ErrorBody	"Incorrect email or password"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}

	view, token, err := h.AuthService.Login(ctx, identifier, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.SetSessionCookie(w, token, int(h.sessionTTL().Seconds()))
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{Success: true, User: view, Token: token})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Stateless tokens stay valid until expiry.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	statusResponse
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, statusResponse{Success: true, Msg: "logged out"})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// HandleVerifyOTP handles POST /v1/auth/verify-otp
//
//	@Summary		Verify the emailed code
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		verifyOTPRequest	true	"Email and code"
//	@Success		200		{object}	statusResponse
//	@Failure		401		{object}	httpx.ErrorBody	"Invalid or expired OTP"
//	@Router			/v1/auth/verify-otp [post].
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.AuthService.VerifyOTP(ctx, req.Email, req.OTP); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, statusResponse{Success: true, Msg: "email verified"})
}

// HandleResendOTP handles POST /v1/auth/resend-otp
//
//	@Summary		Resend the verification code
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	statusResponse
//	@Failure		404	{object}	httpx.ErrorBody	"User not found"
//	@Router			/v1/auth/resend-otp [post].
func (h *AuthHandler) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserID(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.AuthService.ResendOTP(ctx, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	slogx.FromContext(ctx).Info("verification code resent", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, statusResponse{Success: true, Msg: "verification code sent"})
}
