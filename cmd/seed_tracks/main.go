// cmd/seed_tracks/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go_4_word_card/internal/config"
	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"
	"go_4_word_card/internal/repository"
	"go_4_word_card/internal/service"
)

// sampleTracks は tracks テーブルに投入する初期データ
var sampleTracks = []model.Track{
	{Title: "Blue in Green", Artist: "Miles Davis", Album: "Kind of Blue", DurationSeconds: 337},
	{Title: "So What", Artist: "Miles Davis", Album: "Kind of Blue", DurationSeconds: 562},
	{Title: "Naima", Artist: "John Coltrane", Album: "Giant Steps", DurationSeconds: 261},
	{Title: "Take Five", Artist: "The Dave Brubeck Quartet", Album: "Time Out", DurationSeconds: 324},
	{Title: "Round Midnight", Artist: "Thelonious Monk", Album: "Genius of Modern Music", DurationSeconds: 193},
	{Title: "My Favorite Things", Artist: "John Coltrane", Album: "My Favorite Things", DurationSeconds: 823},
	{Title: "Waltz for Debby", Artist: "Bill Evans Trio", Album: "Waltz for Debby", DurationSeconds: 420},
	{Title: "Song for My Father", Artist: "Horace Silver", Album: "Song for My Father", DurationSeconds: 442},
	{Title: "Moanin'", Artist: "Art Blakey & The Jazz Messengers", Album: "Moanin'", DurationSeconds: 575},
	{Title: "Cantaloupe Island", Artist: "Herbie Hancock", Album: "Empyrean Isles", DurationSeconds: 330},
	{Title: "Maiden Voyage", Artist: "Herbie Hancock", Album: "Maiden Voyage", DurationSeconds: 483},
	{Title: "Footprints", Artist: "Wayne Shorter", Album: "Adam's Apple", DurationSeconds: 444},
}

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := middleware.NewAppLogger(os.Stderr, cfg.Log.Level)
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database.DSN(), logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), time.Minute)
	defer cancel()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		logger.Error("Error ensuring database schema", slog.Any("error", err))
		os.Exit(1)
	}

	tracks := make([]*model.Track, 0, len(sampleTracks))
	for i := range sampleTracks {
		t := sampleTracks[i]
		tracks = append(tracks, &t)
	}

	svc := service.NewTrackService(db, repository.NewGormTrackRepository(), cfg.Tracks.MaxPageCount)
	inserted, err := svc.SeedTracks(ctx, tracks)
	if err != nil {
		logger.Error("Failed to seed tracks", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Seeding finished", slog.Int("inserted", inserted))
}
