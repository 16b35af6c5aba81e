package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/upchain/social/internal/social/realtime"
	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/internal/social/store"
	"github.com/upchain/social/pkg/httpx"
	"github.com/upchain/social/pkg/jwtx"
	"github.com/upchain/social/pkg/slogx"

	_ "github.com/upchain/social/api/social" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	sessionTTL   time.Duration
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	hub   *realtime.Hub

	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	SocialService  *service.SocialService
	ChatService    *service.ChatService
}

func NewRouter(
	verifier *jwtx.Verifier,
	sessionTTL time.Duration,
	buildVersion string,
	st store.Store,
	hub *realtime.Hub,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		sessionTTL:   sessionTTL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		hub:          hub,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSocial()
	r.registerChats()
	r.registerRealtime()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Upchain Social API
//	@version		0.1.0
//	@description	Social networking backend: accounts with email verification, profiles,
//	@description	follows with realtime notifications, premium upgrades and direct-message reads.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}". The token cookie works too.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, SessionTTL: r.sessionTTL}

	// Credential endpoints take the strict profile; they are the brute
	// force surface.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyOTP),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/resend-otp",
		httpx.Chain(http.HandlerFunc(h.HandleResendOTP),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/users/{id}/profile",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/users/profile",
		httpx.Chain(http.HandlerFunc(h.HandleEdit),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/users/profile/remove-photo",
		httpx.Chain(http.HandlerFunc(h.HandleRemovePhoto),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/users/suggested",
		httpx.Chain(http.HandlerFunc(h.HandleSuggested),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/users/premium",
		httpx.Chain(http.HandlerFunc(h.HandlePremium),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSocial() {
	h := &SocialHandler{SocialService: r.SocialService}

	r.Mux.Handle("POST /v1/users/{id}/follow",
		httpx.Chain(http.HandlerFunc(h.HandleToggleFollow),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/notifications",
		httpx.Chain(http.HandlerFunc(h.HandleNotifications),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerChats() {
	h := &ChatHandler{ChatService: r.ChatService}

	r.Mux.Handle("GET /v1/chats/{id}/messages",
		httpx.Chain(http.HandlerFunc(h.HandleMessages),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRealtime() {
	h := &WSHandler{Hub: r.hub}

	r.Mux.Handle("GET /v1/ws",
		httpx.Chain(http.HandlerFunc(h.HandleConnect),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
