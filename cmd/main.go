package main

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

	"github.com/Dosada05/tournament-day/config"
	"github.com/Dosada05/tournament-day/db"
	"github.com/Dosada05/tournament-day/handlers"
	"github.com/Dosada05/tournament-day/metrics"
	"github.com/Dosada05/tournament-day/middleware"
	"github.com/Dosada05/tournament-day/realtime"
	"github.com/Dosada05/tournament-day/repositories"
	api "github.com/Dosada05/tournament-day/routes"
	"github.com/Dosada05/tournament-day/services"
	"github.com/Dosada05/tournament-day/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

//	@title			Tournament Day API
//	@version		1.0
//	@description	Daily team formation, round pairing, scoring and standings for a recurring multi-day tournament.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("timezone", cfg.Location.String()),
		slog.Bool("archive_enabled", cfg.R2.Enabled()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(ctx, dbConn); err != nil {
		logger.Error("failed to apply schema", slog.Any("error", err))
		os.Exit(1)
	}

	var archiver services.RoundArchiver
	if cfg.R2.Enabled() {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		archiver = services.NewStorageRoundArchiver(uploader)
		logger.Info("round archive enabled", slog.String("bucket", cfg.R2.BucketName))
	}

	appMetrics := metrics.New()

	wsHub := realtime.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket hub started")

	transactor := repositories.NewTransactor(dbConn, logger)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	rosterRepo := repositories.NewPostgresRosterRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	matchupRepo := repositories.NewPostgresMatchupRepository(dbConn)
	roundRepo := repositories.NewPostgresRoundRepository(dbConn)

	authService := services.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecretKey, services.DefaultTokenTTL)
	if cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is not set; admin login is disabled")
	}
	tournamentService := services.NewTournamentService(tournamentRepo, wsHub, logger)
	rosterService := services.NewRosterService(rosterRepo, tournamentRepo,
		services.CheckInPolicy{Location: cfg.Location, OpenHour: cfg.CheckInHour}, appMetrics)
	standingsService := services.NewStandingsService(gameRepo, rosterRepo)
	gameService := services.NewGameService(gameRepo, rosterRepo, standingsService, wsHub, logger, cfg.GameDuration)
	roundService := services.NewRoundService(services.RoundDeps{
		Tx:          transactor,
		Tournaments: tournamentRepo,
		Roster:      rosterRepo,
		Teams:       teamRepo,
		Games:       gameRepo,
		Matchups:    matchupRepo,
		Rounds:      roundRepo,
		Notifier:    wsHub,
		Archiver:    archiver,
		Metrics:     appMetrics,
		Logger:      logger,
	})

	scheduler := services.NewMaintenanceScheduler(rosterService, cfg.Location, logger)
	go scheduler.Run(ctx)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{
			JWTSecret:      cfg.JWTSecretKey,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			RoundLimiter:   middleware.NewIPRateLimiter(cfg.RoundRateLimit, 1),
			Registry:       appMetrics.Registry(),
		},
		handlers.NewAuthHandler(authService),
		handlers.NewRoundHandler(roundService),
		handlers.NewGameHandler(gameService),
		handlers.NewParticipantHandler(rosterService),
		handlers.NewTournamentHandler(tournamentService),
		handlers.NewStandingsHandler(standingsService),
		handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
		handlers.NewHealthHandler(dbConn),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
			os.Exit(1)
		}
		logger.Info("server stopped")
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
