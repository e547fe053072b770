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

	httpapi "github.com/aussiebroadwan/roster/internal/account/http"
	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/internal/account/store/drivers/postgres"
	"github.com/aussiebroadwan/roster/internal/account/store/drivers/sqlite"
	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/aussiebroadwan/roster/pkg/otelx"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

const (
	serviceName = "roster-account"

	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the account service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	traceShutdown func(context.Context) error

	tokenService   *service.TokenService
	accountService *service.AccountService
	authService    *service.AuthService
	companyService *service.CompanyService
	userService    *service.UserService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if app.cfg.JWTSecret == "" {
		secret, err := ephemeralSecret()
		if err != nil {
			return nil, fmt.Errorf("generate ephemeral secret: %w", err)
		}
		app.cfg.JWTSecret = secret
		app.logger.Warn("ROSTER_JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}

	shutdown, err := otelx.Setup(ctx, otelx.Config{
		ServiceName:    serviceName,
		ServiceVersion: BuildVersion,
		Endpoint:       cfg.OtelEndpoint,
		Enabled:        cfg.OtelEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.traceShutdown = shutdown

	if err := app.initDatabase(ctx); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		_ = shutdown(ctx)
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("account service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

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
	app.logger.Info("shutting down account service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.traceShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("account service stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db     store.Store
		err    error
		driver = "sqlite"
	)
	if app.cfg.UsesPostgres() {
		driver = "postgres"
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	} else {
		db, err = sqlite.NewStore(app.cfg.DatabaseURL)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", driver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)
	signer, err := jwtx.NewHS256Signer(secret)
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}
	verifier, err := jwtx.NewHS256Verifier(secret, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.TokenTTL,
	}
	app.accountService, err = service.NewAccountService(app.db, cryptox.NewPasswordHasher(app.cfg.BcryptCost), app.tokenService)
	if err != nil {
		return err
	}
	app.authService = &service.AuthService{Store: app.db, Tokens: app.tokenService}
	app.companyService = &service.CompanyService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.db, app.logger)
	router.AccountService = app.accountService
	router.AuthService = app.authService
	router.CompanyService = app.companyService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
