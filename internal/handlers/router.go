// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_4_word_card/internal/config"
	"go_4_word_card/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// HealthChecker は依存先 (DB) の疎通確認を行います
type HealthChecker func(ctx context.Context) error

type RouterConfig struct {
	CORS config.CORSConfig
	// RequestTimeout はオラクルのリトライ込みの所要時間より長くする
	RequestTimeout time.Duration
}

// NewRouter はミドルウェアとルーティングを設定した chi ルーターを返します
func NewRouter(cfg RouterConfig, logger *slog.Logger, cards *CardHandler, tracks *TrackHandler, health HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Post("/create", cards.CreateCard)
			r.Get("/getAll", cards.GetAllCards)
		})
		r.Route("/tracks", func(r chi.Router) {
			r.Get("/getAll", tracks.GetAllTracks)
		})
	})

	// 生存確認
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Health Check (DB接続チェック)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if health != nil {
			if err := health(ctx); err != nil {
				middleware.GetLogger(ctx).Error("Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
