package http

import "github.com/upchain/social/internal/social/domain"

// Response envelopes. Every success body carries success=true so clients can
// branch on one field; failures go through httpx.WriteError.

type userResponse struct {
	Success bool            `json:"success"`
	User    domain.UserView `json:"user"`
}

type profileResponse struct {
	Success bool           `json:"success"`
	User    domain.Profile `json:"user"`
}

type usersResponse struct {
	Success bool              `json:"success"`
	Users   []domain.UserView `json:"users"`
}

type loginResponse struct {
	Success bool             `json:"success"`
	User    domain.LoginView `json:"user"`
	Token   string           `json:"token"`
}

type followResponse struct {
	Success   bool            `json:"success"`
	User      domain.UserView `json:"user"`
	Following bool            `json:"following"`
}

type notificationsResponse struct {
	Success       bool                  `json:"success"`
	Notifications []domain.Notification `json:"notifications"`
}

type messagesResponse struct {
	Success  bool             `json:"success"`
	Messages []domain.Message `json:"messages"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}
