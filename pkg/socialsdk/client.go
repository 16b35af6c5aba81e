package socialsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the social service. It provides the
// unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a social service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("social api: %d %s", e.StatusCode, e.Msg)
}

// Login authenticates with a username or email and returns a Session holding
// the token cookie. The session token is also available on the Session for
// bearer use.
func (c *SDKClient) Login(ctx context.Context, identifier, password string) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	httpClient := &http.Client{
		Timeout: c.HTTPClient.Timeout,
		Jar:     jar,
	}

	body, err := json.Marshal(map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var loginResp loginResponse
	if err := decodeResponse(resp, &loginResp); err != nil {
		return nil, err
	}

	return &Session{
		client:     c,
		httpClient: httpClient,
		token:      loginResp.Token,
		user:       loginResp.User,
		messages:   make(map[string][]Message),
	}, nil
}

// Register creates an unverified account. A verification code is emailed to
// the given address; VerifyOTP completes the flow.
func (c *SDKClient) Register(ctx context.Context, username, email, password string) (User, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return User{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/auth/register", bytes.NewReader(body))
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return User{}, err
	}
	defer resp.Body.Close()

	var regResp userResponse
	if err := decodeResponse(resp, &regResp); err != nil {
		return User{}, err
	}
	return regResp.User, nil
}

// VerifyOTP submits the emailed verification code for the given address.
func (c *SDKClient) VerifyOTP(ctx context.Context, email, code string) error {
	body, err := json.Marshal(map[string]string{
		"email": email,
		"otp":   code,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/auth/verify-otp", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var status statusResponse
	return decodeResponse(resp, &status)
}

// decodeResponse decodes v from a 2xx response or returns the service's
// error body as an APIError.
func decodeResponse(resp *http.Response, v any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Msg == "" {
			apiErr.Msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Msg: apiErr.Msg}
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
