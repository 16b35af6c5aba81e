package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/upchain/social/internal/social/domain"
	"github.com/upchain/social/internal/social/media"
	"github.com/upchain/social/internal/social/store"
)

const defaultPremiumDuration = 30 * 24 * time.Hour

// PhotoUpload is an incoming profile picture, streamed from the multipart
// form straight to the uploader.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProfileEdit carries the optional profile fields; nil means leave as is.
type ProfileEdit struct {
	Bio    *string
	Gender *string
	Photo  *PhotoUpload
}

// ProfileService owns the profile read side and profile mutations.
type ProfileService struct {
	Store    store.Store
	Uploader media.Uploader

	PremiumDuration time.Duration

	// SuggestExcludeFollowed hides already-followed users from suggestions.
	SuggestExcludeFollowed bool
}

func (s *ProfileService) premiumDuration() time.Duration {
	if s.PremiumDuration > 0 {
		return s.PremiumDuration
	}
	return defaultPremiumDuration
}

func (s *ProfileService) getUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, NotFoundf("user not found")
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}

// GetProfile returns the fully materialized profile: edges, posts and saved
// posts with authors and comments resolved.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	view, err := viewWithEdges(ctx, s.Store, u)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load edges: %w", err)
	}

	cache := map[string]domain.UserView{u.ID: u.View()}

	posts, err := s.Store.Posts().ListByAuthor(ctx, u.ID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load posts: %w", err)
	}
	postViews, err := s.materializePosts(ctx, posts, cache)
	if err != nil {
		return domain.Profile{}, err
	}

	saved, err := s.Store.Saved().ListSaved(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load saved posts: %w", err)
	}
	savedViews, err := s.materializePosts(ctx, saved, cache)
	if err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{
		UserView: view,
		Posts:    postViews,
		Saved:    savedViews,
	}, nil
}

func (s *ProfileService) materializePosts(ctx context.Context, posts []domain.Post, cache map[string]domain.UserView) ([]domain.PostView, error) {
	views := make([]domain.PostView, 0, len(posts))
	for _, p := range posts {
		author, err := s.authorView(ctx, p.AuthorID, cache)
		if err != nil {
			return nil, err
		}

		comments, err := s.Store.Comments().ListByPost(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load comments: %w", err)
		}

		commentViews := make([]domain.CommentView, 0, len(comments))
		for _, c := range comments {
			ca, err := s.authorView(ctx, c.AuthorID, cache)
			if err != nil {
				return nil, err
			}
			commentViews = append(commentViews, domain.CommentView{
				ID:        c.ID,
				Author:    ca,
				Text:      c.Text,
				CreatedAt: c.CreatedAt,
			})
		}

		views = append(views, domain.PostView{
			ID:        p.ID,
			Author:    author,
			Caption:   p.Caption,
			ImageURL:  p.ImageURL,
			Comments:  commentViews,
			CreatedAt: p.CreatedAt,
		})
	}
	return views, nil
}

func (s *ProfileService) authorView(ctx context.Context, userID string, cache map[string]domain.UserView) (domain.UserView, error) {
	if v, ok := cache[userID]; ok {
		return v, nil
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserView{}, fmt.Errorf("lookup author: %w", err)
	}
	v := u.View()
	cache[userID] = v
	return v, nil
}

// EditProfile overwrites the provided fields and uploads a new photo when
// one is attached.
func (s *ProfileService) EditProfile(ctx context.Context, userID string, edit ProfileEdit) (domain.UserView, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserView{}, err
	}

	bio, gender, picture := u.Bio, u.Gender, u.ProfilePicture
	if edit.Bio != nil {
		bio = *edit.Bio
	}
	if edit.Gender != nil {
		gender = *edit.Gender
	}
	if edit.Photo != nil {
		url, err := s.Uploader.Upload(ctx, edit.Photo.Filename, edit.Photo.ContentType, edit.Photo.Body)
		if err != nil {
			return domain.UserView{}, Internal("could not upload photo", err)
		}
		picture = url
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, bio, gender, picture); err != nil {
		return domain.UserView{}, fmt.Errorf("update profile: %w", err)
	}

	u.Bio, u.Gender, u.ProfilePicture = bio, gender, picture
	return u.View(), nil
}

// RemovePhoto resets the profile picture to the default path.
func (s *ProfileService) RemovePhoto(ctx context.Context, userID string) (domain.UserView, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserView{}, err
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, u.Bio, u.Gender, domain.DefaultProfilePicture); err != nil {
		return domain.UserView{}, fmt.Errorf("update profile: %w", err)
	}

	u.ProfilePicture = domain.DefaultProfilePicture
	return u.View(), nil
}

// UpgradeToPremium flags the account premium for the configured duration.
func (s *ProfileService) UpgradeToPremium(ctx context.Context, userID string) (domain.UserView, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserView{}, err
	}

	expires := time.Now().UTC().Add(s.premiumDuration())
	if err := s.Store.Users().SetPremium(ctx, userID, expires); err != nil {
		return domain.UserView{}, fmt.Errorf("set premium: %w", err)
	}

	u.IsPremium = true
	u.PremiumExpiresAt = &expires
	return u.View(), nil
}

// SuggestedUsers lists everyone except the requester, as sanitized
// projections.
func (s *ProfileService) SuggestedUsers(ctx context.Context, requesterID string) ([]domain.UserView, error) {
	users, err := s.Store.Users().ListSuggested(ctx, requesterID, s.SuggestExcludeFollowed)
	if err != nil {
		return nil, fmt.Errorf("list suggested: %w", err)
	}

	views := make([]domain.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}
	return views, nil
}
