//go:generate mockery --name TrackRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"

	"gorm.io/gorm"
)

type TrackRepository interface {
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Track, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, tracks []*model.Track) error
}

type gormTrackRepository struct{}

func NewGormTrackRepository() TrackRepository {
	return &gormTrackRepository{}
}

func (r *gormTrackRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	if err := db.WithContext(ctx).Model(&model.Track{}).Count(&count).Error; err != nil {
		logger.Error("Error counting tracks in DB", "error", err)
		return 0, fmt.Errorf("gormTrackRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormTrackRepository) FindPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Track, error) {
	logger := middleware.GetLogger(ctx)
	tracks := []*model.Track{}
	result := db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&tracks)
	if result.Error != nil {
		logger.Error("Error finding tracks page in DB", "error", result.Error, "offset", offset, "limit", limit)
		return nil, fmt.Errorf("gormTrackRepository.FindPage: %w", result.Error)
	}
	return tracks, nil
}

func (r *gormTrackRepository) CreateBatch(ctx context.Context, tx *gorm.DB, tracks []*model.Track) error {
	logger := middleware.GetLogger(ctx)
	if len(tracks) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).CreateInBatches(tracks, 100).Error; err != nil {
		logger.Error("Error creating tracks in DB", "error", err, "count", len(tracks))
		return fmt.Errorf("gormTrackRepository.CreateBatch: %w", err)
	}
	return nil
}
