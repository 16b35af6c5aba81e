package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/upchain/social/pkg/jwtx"
	"github.com/upchain/social/pkg/slogx"
)

// AuthnMiddleware verifies the session token and injects the caller's
// identity into the request context. The token is taken from the session
// cookie, or from an Authorization bearer header for non-browser clients.
func AuthnMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := sessionToken(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "user not authenticated")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "user not authenticated")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				WriteError(w, http.StatusUnauthorized, "session expired, please log in again")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyUsername, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}

	return ""
}
