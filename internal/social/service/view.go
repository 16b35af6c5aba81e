package service

import (
	"context"

	"github.com/upchain/social/internal/social/domain"
	"github.com/upchain/social/internal/social/store"
)

// viewWithEdges builds the sanitized projection with the follower and
// following id sets attached.
func viewWithEdges(ctx context.Context, st store.Store, u domain.User) (domain.UserView, error) {
	v := u.View()

	followers, err := st.Follows().Followers(ctx, u.ID)
	if err != nil {
		return domain.UserView{}, err
	}
	following, err := st.Follows().Following(ctx, u.ID)
	if err != nil {
		return domain.UserView{}, err
	}

	v.Followers = followers
	v.Following = following
	return v, nil
}
