package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/floobyte/site-api/internal/infra/config"
	"github.com/floobyte/site-api/internal/infra/database"
	"github.com/floobyte/site-api/internal/infra/http/handlers"
	"github.com/floobyte/site-api/internal/infra/http/middleware"
	"github.com/floobyte/site-api/internal/infra/integration/googleplaces"
	"github.com/floobyte/site-api/internal/infra/integration/trustpilot"
	"github.com/floobyte/site-api/internal/infra/monitoring"
	"github.com/floobyte/site-api/internal/infra/session"
	"github.com/floobyte/site-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	if cfg.Sentry.DSN != "" {
		if err := monitoring.Init(cfg.Sentry.DSN, cfg.Server.Env); err != nil {
			slog.Warn("sentry init failed", "error", err)
		} else {
			defer monitoring.Flush()
		}
	}

	db, err := database.NewDBConnection(
		cfg.Database.URL,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
	)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	postRepo := database.NewPostRepository(db)
	projectRepo := database.NewProjectRepository(db)
	serviceRepo := database.NewServiceRepository(db)
	careerRepo := database.NewCareerRepository(db)
	badgeRepo := database.NewBadgeRepository(db)
	reviewRepo := database.NewReviewRepository(db)
	messageRepo := database.NewMessageRepository(db)
	applicationRepo := database.NewApplicationRepository(db)
	leadRepo := database.NewLeadRepository(db)
	settingRepo := database.NewSettingRepository(db)

	// Sessions and credentials
	sessions := session.NewMemoryStore(cfg.Auth.SessionTTL)
	creds := usecase.AdminCredentials{
		Username:     cfg.Auth.AdminUsername,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		Disabled:     cfg.Auth.Disabled,
	}

	// Integration gateways
	googleClient := googleplaces.NewClient()
	trustpilotClient := trustpilot.NewClient()

	// UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	createMessageUC := usecase.NewCreateMessageUseCase(messageRepo)
	createApplicationUC := usecase.NewCreateApplicationUseCase(applicationRepo)
	syncReviewsUC := usecase.NewSyncReviewsUseCase(
		reviewRepo, settingRepo, googleClient, trustpilotClient,
		cfg.Integrations.GooglePlacesAPIKey, cfg.Integrations.TrustpilotAccessToken,
	)

	// Handlers
	deps := routerDeps{
		allowedOrigins: cfg.CORS.AllowedOrigins,
		requireAuth:    middleware.RequireAuth(sessions, cfg.Auth.Disabled),
		intakeLimiter:  middleware.NewRateLimiter(20, time.Minute),

		health:       handlers.NewHealthHandler(cfg.Server.Env, cfg.Database.URL != "", postRepo),
		auth:         handlers.NewAuthHandler(creds, sessions, cfg.Auth.SessionTTL, cfg.IsProduction()),
		posts:        handlers.NewPostHandler(postRepo),
		projects:     handlers.NewProjectHandler(projectRepo),
		services:     handlers.NewServiceHandler(serviceRepo),
		careers:      handlers.NewCareerHandler(careerRepo),
		badges:       handlers.NewBadgeHandler(badgeRepo),
		reviews:      handlers.NewReviewHandler(reviewRepo, syncReviewsUC),
		messages:     handlers.NewMessageHandler(messageRepo, createMessageUC),
		applications: handlers.NewApplicationHandler(applicationRepo, createApplicationUC),
		leads:        handlers.NewLeadHandler(leadRepo, createLeadUC),
		settings:     handlers.NewSettingHandler(settingRepo),
		stats:        handlers.NewStatsHandler(postRepo, projectRepo, serviceRepo, messageRepo, careerRepo),
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	if err := http.ListenAndServe(addr, newRouter(deps)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
