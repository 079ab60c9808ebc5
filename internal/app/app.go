// Package app wires configuration, storage, services, and transport together
// and runs the HTTP server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (migrations)
	"github.com/pressly/goose/v3"

	"github.com/nuestra-historia/backend/internal/adapter/postgres"
	memoryrepo "github.com/nuestra-historia/backend/internal/adapter/postgres/memory"
	messagerepo "github.com/nuestra-historia/backend/internal/adapter/postgres/message"
	songrepo "github.com/nuestra-historia/backend/internal/adapter/postgres/song"
	timelinerepo "github.com/nuestra-historia/backend/internal/adapter/postgres/timeline"
	userrepo "github.com/nuestra-historia/backend/internal/adapter/postgres/user"
	"github.com/nuestra-historia/backend/internal/auth"
	"github.com/nuestra-historia/backend/internal/config"
	authsvc "github.com/nuestra-historia/backend/internal/service/auth"
	memorysvc "github.com/nuestra-historia/backend/internal/service/memory"
	messagesvc "github.com/nuestra-historia/backend/internal/service/message"
	songsvc "github.com/nuestra-historia/backend/internal/service/song"
	timelinesvc "github.com/nuestra-historia/backend/internal/service/timeline"
	"github.com/nuestra-historia/backend/internal/storage"
	"github.com/nuestra-historia/backend/internal/transport/middleware"
	"github.com/nuestra-historia/backend/internal/transport/rest"
	"github.com/nuestra-historia/backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, builds the service graph, and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init image storage: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	txm := postgres.NewTxManager(pool)

	authService := authsvc.NewService(logger, userrepo.New(pool), jwtManager, cfg.Auth)
	memoryService := memorysvc.NewService(logger, memoryrepo.New(pool), store, txm, cfg.Storage.MaxUploadSize)
	timelineService := timelinesvc.NewService(logger, timelinerepo.New(pool))
	songService := songsvc.NewService(logger, songrepo.New(pool))
	messageService := messagesvc.NewService(logger, messagerepo.New(pool))

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	var loginLimiter middleware.Middleware
	if cfg.Auth.LoginRateLimit > 0 {
		loginLimiter = limiter.Limit(cfg.Auth.LoginRateLimit)
	}

	var uploadsDir string
	if local, ok := store.(*storage.Local); ok {
		uploadsDir = local.Dir()
	}

	router := rest.NewRouter(rest.Deps{
		Logger:       logger,
		CORS:         cfg.CORS,
		Auth:         rest.NewAuthHandler(authService, logger),
		Memories:     rest.NewMemoryHandler(memoryService, logger),
		Timeline:     rest.NewTimelineHandler(timelineService, logger),
		Songs:        rest.NewSongHandler(songService, logger),
		Messages:     rest.NewMessageHandler(messageService, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		RequireAuth:  middleware.RequireAuth(jwtManager),
		LoginLimiter: loginLimiter,
		UploadsDir:   uploadsDir,
		Version:      Version,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// migrate applies the embedded goose migrations. goose works over
// database/sql, so a short-lived connection is opened next to the pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
