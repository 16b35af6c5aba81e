package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/upchain/social/internal/social/domain"
	"github.com/upchain/social/internal/social/mailer"
	"github.com/upchain/social/internal/social/store"
	"github.com/upchain/social/pkg/cryptox"
	"github.com/upchain/social/pkg/idx"
	"github.com/upchain/social/pkg/jwtx"
	"github.com/upchain/social/pkg/otpx"
	"github.com/upchain/social/pkg/slogx"
)

const defaultOTPTTL = 10 * time.Minute

// AuthService owns registration, login and email verification.
type AuthService struct {
	Store  store.Store
	Mailer mailer.Mailer
	Signer *jwtx.Signer

	Issuer     string
	SessionTTL time.Duration
	OTPTTL     time.Duration
}

func (s *AuthService) otpTTL() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return defaultOTPTTL
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// Register creates an unverified account and dispatches the first
// verification code. The returned projection carries neither the email nor
// any credential material.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.UserView, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return domain.UserView{}, Validationf("something is missing, please check")
	}

	// Email is checked before username so the conflict message matches the
	// field the user is most likely to retry with.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.UserView{}, Conflictf("%s email already registered, try different one", email)
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.UserView{}, fmt.Errorf("lookup email: %w", err)
	}

	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return domain.UserView{}, Conflictf("%s username already taken, try different one", username)
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.UserView{}, fmt.Errorf("lookup username: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.UserView{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:             idx.New().String(),
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		ProfilePicture: domain.DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.UserView{}, Conflictf("%s email already registered, try different one", email)
		}
		return domain.UserView{}, fmt.Errorf("create user: %w", err)
	}

	// The account exists either way; ResendOTP recovers a failed dispatch.
	if err := s.issueOTP(ctx, u); err != nil {
		slogx.FromContext(ctx).Warn("initial otp dispatch failed",
			"user_id", u.ID,
			"error", err,
		)
	}

	return u.View(), nil
}

// Login authenticates by username or email and returns the allow-listed
// projection with posts, plus a signed session token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (domain.LoginView, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return domain.LoginView{}, "", Validationf("something is missing, please check")
	}

	u, err := s.Store.Users().GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same message as a bad password, no account enumeration.
			return domain.LoginView{}, "", Authf("incorrect email or password")
		}
		return domain.LoginView{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.LoginView{}, "", Authf("incorrect email or password")
		}
		return domain.LoginView{}, "", fmt.Errorf("verify password: %w", err)
	}

	view, err := viewWithEdges(ctx, s.Store, u)
	if err != nil {
		return domain.LoginView{}, "", fmt.Errorf("load edges: %w", err)
	}
	view.Email = u.Email // the caller just proved ownership

	posts, err := s.Store.Posts().ListByAuthor(ctx, u.ID)
	if err != nil {
		return domain.LoginView{}, "", fmt.Errorf("load posts: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	claims := jwtx.NewSessionClaims(u.ID, u.Username, s.Issuer, s.sessionTTL(), time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.LoginView{}, "", fmt.Errorf("sign session token: %w", err)
	}

	return domain.LoginView{UserView: view, Posts: posts}, token, nil
}

// VerifyOTP checks the emailed code and marks the account verified. One
// generic message covers every failure mode.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || code == "" {
		return Validationf("something is missing, please check")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Authf("invalid or expired OTP")
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if u.OTPCode == nil || u.OTPExpiresAt == nil {
		return Authf("invalid or expired OTP")
	}
	if *u.OTPCode != code || time.Now().After(*u.OTPExpiresAt) {
		return Authf("invalid or expired OTP")
	}

	if err := s.Store.Users().MarkVerified(ctx, u.ID); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// ResendOTP issues a fresh code for an authenticated but unverified user.
func (s *AuthService) ResendOTP(ctx context.Context, userID string) error {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundf("user not found")
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := s.issueOTP(ctx, u); err != nil {
		return Internal("could not send verification code", err)
	}
	return nil
}

func (s *AuthService) issueOTP(ctx context.Context, u domain.User) error {
	code, err := otpx.NewCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	expires := time.Now().UTC().Add(s.otpTTL())
	if err := s.Store.Users().SetOTP(ctx, u.ID, code, expires); err != nil {
		return fmt.Errorf("persist otp: %w", err)
	}

	if err := s.Mailer.SendVerificationCode(ctx, u.Email, u.Username, code); err != nil {
		return fmt.Errorf("dispatch otp: %w", err)
	}
	return nil
}
