package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/inkpost/blog-api/internal/config"
	"github.com/inkpost/blog-api/internal/platform/postgres"
	"github.com/inkpost/blog-api/internal/service/auth"
	"github.com/inkpost/blog-api/internal/store"
)

// application holds the wired dependencies for the server. Everything is
// constructed once at startup; request handling shares these by reference.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	postStore        store.PostStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication connects to the database, applies migrations, and builds
// the service graph.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost),
		postStore:        postgres.NewPostgresPostStore(db, logger),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application. Safe to call once
// after serve returns.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
