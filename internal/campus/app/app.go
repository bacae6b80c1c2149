package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/moderation"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/anonname"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=".
var BuildVersion = "v0.1.0"

// Application encapsulates the campus service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	tokenService        *service.TokenService
	accountService      *service.AccountService
	queryService        *service.QueryService
	commentService      *service.CommentService
	retentionService    *service.RetentionService
	housekeepingService *service.HousekeepingService
	perspective         *moderation.PerspectiveClient // nil when screening is disabled

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "campus",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}
	metrics.AppInfo.WithLabelValues(BuildVersion).Set(1)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("campus service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	app.logger.Info("shutting down campus service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("campus service stopped")
	return nil
}

// initDatabase opens the store and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to open database %q (check CAMPUS_DATABASE_FILE): %w", app.cfg.DatabaseFile, err)
	}
	app.db = db

	if err := db.Ping(context.Background()); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to open database %q (check CAMPUS_DATABASE_FILE): %w", app.cfg.DatabaseFile, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		// Validate only lets this through in dev
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate development JWT secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	tokens, err := service.NewTokenService([]byte(secret), app.cfg.JWTIssuer, app.cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokenService = tokens

	names := anonname.New()

	app.accountService = &service.AccountService{
		Store:  app.db,
		Tokens: app.tokenService,
		Policy: service.NewEmailPolicy(app.cfg.EmailDomains),
	}
	app.queryService = &service.QueryService{Store: app.db, Names: names}
	app.commentService = &service.CommentService{Store: app.db, Names: names}
	app.retentionService = &service.RetentionService{Store: app.db, Window: app.cfg.RetentionWindow}

	if app.cfg.PerspectiveAPIKey != "" {
		app.perspective = moderation.NewPerspectiveClient(moderation.Config{
			APIKey:    app.cfg.PerspectiveAPIKey,
			Endpoint:  app.cfg.PerspectiveEndpoint,
			Threshold: app.cfg.ToxicityThreshold,
			QPS:       app.cfg.PerspectiveQPS,
			Logger:    app.logger,
		})
		app.commentService.Filter = app.perspective
		app.logger.Info("toxicity screening enabled", "threshold", app.perspective.Threshold())
	} else {
		app.logger.Warn("GOOGLE_PERSPECTIVE_API_KEY not set, comments are not screened")
	}

	if app.cfg.RetentionSweepEnabled {
		app.housekeepingService = service.NewHousekeepingService(
			app.retentionService,
			app.logger,
			app.cfg.RetentionInterval,
		)
	}

	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokenService,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AccountService = app.accountService
	router.QueryService = app.queryService
	router.CommentService = app.commentService
	router.RetentionService = app.retentionService
	router.CronSecret = app.cfg.CronSecret
	if app.perspective != nil {
		router.ModerationState = app.perspective.State
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
