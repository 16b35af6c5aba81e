package domain

import "time"

// DefaultProfilePicture is the path a profile falls back to when the user
// removes their photo.
const DefaultProfilePicture = "/defaultPhoto.png"

// User is the root entity. Records are created on registration and mutated
// by the auth, profile and social services; they are never hard-deleted.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id encoded

	IsVerified   bool
	OTPCode      *string    // pending email verification code (nullable)
	OTPExpiresAt *time.Time // nullable

	Bio            string
	Gender         string
	ProfilePicture string

	IsPremium        bool
	PremiumExpiresAt *time.Time // nullable

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserView is the sanitized projection sent over the wire: no credential
// hash, no OTP state. Email is only populated on login responses.
type UserView struct {
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

// View returns the sanitized projection without the email field. Follower and
// following sets are left for the caller to attach where an endpoint needs
// them.
func (u User) View() UserView {
	return UserView{
		ID:               u.ID,
		Username:         u.Username,
		Bio:              u.Bio,
		Gender:           u.Gender,
		ProfilePicture:   u.ProfilePicture,
		IsVerified:       u.IsVerified,
		IsPremium:        u.IsPremium,
		PremiumExpiresAt: u.PremiumExpiresAt,
		CreatedAt:        u.CreatedAt,
	}
}

// LoginView is the explicit allow-list projection returned on login. It
// includes the email (the user just proved they own it) and the user's posts.
type LoginView struct {
	UserView

	Posts []Post `json:"posts"`
}

// Profile is the fully materialized profile view: posts and saved posts with
// their comments and author projections resolved, newest first.
type Profile struct {
	UserView

	Posts []PostView `json:"posts"`
	Saved []PostView `json:"saved"`
}
