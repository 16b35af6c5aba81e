package socialsdk

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// Session is an authenticated client. The cookie jar carries the session
// token; per-conversation message lists are cached so a failed refetch keeps
// showing the last good state.
type Session struct {
	client     *SDKClient
	httpClient *http.Client
	token      string
	user       LoginUser

	mu       sync.RWMutex
	messages map[string][]Message
}

// Token returns the raw session token for Authorization: Bearer use.
func (s *Session) Token() string { return s.token }

// User returns the record captured at login.
func (s *Session) User() LoginUser { return s.user }

// newRequest builds a request carrying the session token as a bearer header.
// Browsers ride on the cookie; the header keeps the SDK working where the
// jar drops the Secure cookie, plain HTTP test setups included.
func (s *Session) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	return req, nil
}

// Messages returns the cached conversation with the given user without
// touching the network.
func (s *Session) Messages(receiverID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message(nil), s.messages[receiverID]...)
}

// FetchMessages refreshes the cached conversation with receiverID. On
// success the cache is replaced with the server's list; on failure the
// error is logged and the previous cache is returned untouched.
func (s *Session) FetchMessages(ctx context.Context, receiverID string) []Message {
	req, err := s.newRequest(ctx, http.MethodGet, "/v1/chats/"+receiverID+"/messages")
	if err != nil {
		slog.Error("building message fetch request failed", "receiver_id", receiverID, "error", err)
		return s.Messages(receiverID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Error("fetching messages failed", "receiver_id", receiverID, "error", err)
		return s.Messages(receiverID)
	}
	defer resp.Body.Close()

	var msgResp messagesResponse
	if err := decodeResponse(resp, &msgResp); err != nil {
		slog.Error("fetching messages failed", "receiver_id", receiverID, "error", err)
		return s.Messages(receiverID)
	}

	fetched := msgResp.Messages
	if fetched == nil {
		fetched = []Message{}
	}

	s.mu.Lock()
	s.messages[receiverID] = fetched
	s.mu.Unlock()

	return append([]Message(nil), fetched...)
}

// Notifications lists the caller's notifications, newest first.
func (s *Session) Notifications(ctx context.Context) ([]Notification, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/v1/notifications")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var notifResp notificationsResponse
	if err := decodeResponse(resp, &notifResp); err != nil {
		return nil, err
	}
	return notifResp.Notifications, nil
}

// ToggleFollow follows or unfollows the target user. It returns the caller's
// refreshed record and whether the caller now follows the target.
func (s *Session) ToggleFollow(ctx context.Context, targetID string) (User, bool, error) {
	req, err := s.newRequest(ctx, http.MethodPost, "/v1/users/"+targetID+"/follow")
	if err != nil {
		return User{}, false, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return User{}, false, err
	}
	defer resp.Body.Close()

	var followResp struct {
		Success   bool `json:"success"`
		User      User `json:"user"`
		Following bool `json:"following"`
	}
	if err := decodeResponse(resp, &followResp); err != nil {
		return User{}, false, err
	}
	return followResp.User, followResp.Following, nil
}

// Profile fetches a user's full profile record.
func (s *Session) Profile(ctx context.Context, userID string) (User, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/v1/users/"+userID+"/profile")
	if err != nil {
		return User{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return User{}, err
	}
	defer resp.Body.Close()

	var profileResp userResponse
	if err := decodeResponse(resp, &profileResp); err != nil {
		return User{}, err
	}
	return profileResp.User, nil
}

// SuggestedUsers lists accounts the caller might want to follow.
func (s *Session) SuggestedUsers(ctx context.Context) ([]User, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/v1/users/suggested")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var usersResp usersResponse
	if err := decodeResponse(resp, &usersResp); err != nil {
		return nil, err
	}
	return usersResp.Users, nil
}

// UpgradeToPremium upgrades the caller's account and returns the refreshed
// record with the premium expiry set.
func (s *Session) UpgradeToPremium(ctx context.Context) (User, error) {
	req, err := s.newRequest(ctx, http.MethodPost, "/v1/users/premium")
	if err != nil {
		return User{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return User{}, err
	}
	defer resp.Body.Close()

	var upgradeResp userResponse
	if err := decodeResponse(resp, &upgradeResp); err != nil {
		return User{}, err
	}
	return upgradeResp.User, nil
}

// ResendOTP asks the service to email a fresh verification code.
func (s *Session) ResendOTP(ctx context.Context) error {
	req, err := s.newRequest(ctx, http.MethodPost, "/v1/auth/resend-otp")
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var status statusResponse
	return decodeResponse(resp, &status)
}

// Logout clears the server cookie. The local session should be discarded
// afterwards.
func (s *Session) Logout(ctx context.Context) error {
	req, err := s.newRequest(ctx, http.MethodPost, "/v1/auth/logout")
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var status statusResponse
	return decodeResponse(resp, &status)
}
