package app

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/upchain/social/internal/social/http"
	"github.com/upchain/social/internal/social/mailer"
	"github.com/upchain/social/internal/social/media"
	"github.com/upchain/social/internal/social/realtime"
	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/internal/social/store"
	"github.com/upchain/social/internal/social/store/drivers/sqlite"
	"github.com/upchain/social/pkg/cryptox"
	"github.com/upchain/social/pkg/jwtx"
	"github.com/upchain/social/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the social service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier
	hub      *realtime.Hub
	mail     mailer.Mailer
	uploader media.Uploader

	authService         *service.AuthService
	profileService      *service.ProfileService
	socialService       *service.SocialService
	chatService         *service.ChatService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "social-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSessionKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initCollaborators(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("social service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down social service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.hub.Close()
	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("social service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initSessionKeys() error {
	key, err := jwtx.LoadOrGenerateKey(app.cfg.SessionKeyFile)
	if err != nil {
		return fmt.Errorf("failed to load session key: %w", err)
	}

	app.signer = jwtx.NewSigner(key)
	app.verifier = jwtx.NewVerifier(key.Public().(ed25519.PublicKey), app.cfg.Issuer)
	return nil
}

// initCollaborators picks the mail and media implementations based on what
// is configured, falling back to dev-friendly local ones.
func (app *Application) initCollaborators() error {
	app.hub = realtime.NewHub(app.logger)

	if app.cfg.SMTPAddr != "" {
		app.mail = &mailer.SMTPMailer{
			Addr:     app.cfg.SMTPAddr,
			From:     app.cfg.SMTPFrom,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
		}
	} else {
		app.logger.Warn("no SMTP relay configured, verification codes go to the log")
		app.mail = &mailer.LogMailer{Logger: app.logger}
	}

	if app.cfg.S3Bucket != "" {
		uploader, err := media.NewS3Uploader(context.Background(), media.S3Config{
			Endpoint:      app.cfg.S3Endpoint,
			Region:        app.cfg.S3Region,
			Bucket:        app.cfg.S3Bucket,
			AccessKey:     app.cfg.S3AccessKey,
			SecretKey:     app.cfg.S3SecretKey,
			PublicBaseURL: app.cfg.S3PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize object store: %w", err)
		}
		app.uploader = uploader
	} else {
		app.logger.Warn("no object store configured, uploads go to local disk", "dir", app.cfg.UploadDir)
		app.uploader = &media.LocalUploader{
			Dir:     app.cfg.UploadDir,
			BaseURL: app.cfg.UploadBaseURL,
		}
	}

	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Mailer:     app.mail,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		OTPTTL:     app.cfg.OTPTTL,
	}

	app.profileService = &service.ProfileService{
		Store:                  app.db,
		Uploader:               app.uploader,
		PremiumDuration:        app.cfg.PremiumDuration,
		SuggestExcludeFollowed: app.cfg.SuggestExcludeFollowed,
	}

	app.socialService = &service.SocialService{
		Store:  app.db,
		Pusher: app.hub,
	}

	app.chatService = &service.ChatService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.SessionTTL,
		BuildVersion,
		app.db,
		app.hub,
		app.logger,
	)

	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.SocialService = app.socialService
	router.ChatService = app.chatService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
