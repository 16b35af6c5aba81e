package socialsdk

import "time"

// Wire types for the social service API. These mirror the server's JSON
// contract; the SDK stays importable without reaching into the server's
// internal packages.

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// User is the sanitized user record. Email is only present on login.
type User struct {
	ID               string     `json:"_id"`
	Username         string     `json:"username"`
	Email            string     `json:"email,omitempty"`
	Bio              string     `json:"bio"`
	Gender           string     `json:"gender,omitempty"`
	ProfilePicture   string     `json:"profilePicture"`
	IsVerified       bool       `json:"isVerified"`
	IsPremium        bool       `json:"isPremium"`
	PremiumExpiresAt *time.Time `json:"isPremiumExpiry,omitempty"`
	Followers        []string   `json:"followers,omitempty"`
	Following        []string   `json:"following,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Post is an item of user content as returned on login.
type Post struct {
	ID        string    `json:"_id"`
	AuthorID  string    `json:"author"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginUser is the user record returned on login, posts included.
type LoginUser struct {
	User

	Posts []Post `json:"posts"`
}

// Message is one direct message in a conversation.
type Message struct {
	ID         string    `json:"_id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Notification is a persisted follow notification.
type Notification struct {
	ID         string    `json:"_id"`
	Type       string    `json:"type"`
	ActorID    string    `json:"user"`
	ReceiverID string    `json:"receiver"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HealthResponse is the body of the livez and readyz probes.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
	Token   string    `json:"token"`
}

type messagesResponse struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages"`
}

type userResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type notificationsResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
}

type usersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}
