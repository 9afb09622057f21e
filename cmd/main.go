// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_4_word_card/internal/config"
	"go_4_word_card/internal/handlers"
	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/repository"
	"go_4_word_card/internal/service"
)

// configDir は設定ファイルのディレクトリ (CONFIG_DIR で上書き可能)
func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

func main() {
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig(configDir())
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := middleware.NewAppLogger(os.Stderr, cfg.Log.Level)
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. Database (GORM)
	db, err := repository.NewDB(cfg.Database.DSN(), logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 2. Schema (起動時に1回だけ)
	schemaCtx, cancelSchema := context.WithTimeout(middleware.WithLogger(context.Background(), logger), 30*time.Second)
	err = repository.EnsureSchema(schemaCtx, db)
	cancelSchema()
	if err != nil {
		slog.Error("Error ensuring database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	cardRepo := repository.NewGormCardRepository()
	trackRepo := repository.NewGormTrackRepository()

	generator := service.NewCardGenerator(cfg.Oracle)
	cardService := service.NewCardService(db, cardRepo, generator)
	trackService := service.NewTrackService(db, trackRepo, cfg.Tracks.MaxPageCount)

	cardHandler := handlers.NewCardHandler(cardService, cfg.Oracle.LegacyNotFound)
	trackHandler := handlers.NewTrackHandler(trackService, cfg.Tracks.DefaultPageCount)

	// 4. Router
	requestTimeout := cfg.Oracle.Budget() + 10*time.Second
	r := handlers.NewRouter(
		handlers.RouterConfig{CORS: cfg.CORS, RequestTimeout: requestTimeout},
		logger,
		cardHandler,
		trackHandler,
		func(ctx context.Context) error { return sqlDB.PingContext(ctx) },
	)

	// 5. Start Server
	server := &http.Server{
		Addr:        cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// 生成を待つリクエストがあるのでルーターのタイムアウトより長くする
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port), slog.Duration("request_timeout", requestTimeout))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
