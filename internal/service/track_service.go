//go:generate mockery --name TrackService --output ./mocks --outpkg mocks --structname MockTrackService --filename track_service.go
// internal/service/track_service.go
package service

import (
	"context"
	"fmt"

	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"
	"go_4_word_card/internal/repository"

	"gorm.io/gorm"
)

type TrackService interface {
	ListTracks(ctx context.Context, page, pageCount int) (*model.TrackPage, error)
	// SeedTracks はテーブルが空の場合だけ tracks を投入し、投入件数を返します
	SeedTracks(ctx context.Context, tracks []*model.Track) (int, error)
}

type trackService struct {
	db           *gorm.DB
	trackRepo    repository.TrackRepository
	maxPageCount int
}

func NewTrackService(db *gorm.DB, trackRepo repository.TrackRepository, maxPageCount int) TrackService {
	return &trackService{
		db:           db,
		trackRepo:    trackRepo,
		maxPageCount: maxPageCount,
	}
}

func (s *trackService) ListTracks(ctx context.Context, page, pageCount int) (*model.TrackPage, error) {
	if page < 0 || pageCount < 1 {
		return nil, model.ErrInvalidInput
	}
	if s.maxPageCount > 0 && pageCount > s.maxPageCount {
		pageCount = s.maxPageCount
	}

	count, err := s.trackRepo.Count(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}

	tracks := []*model.Track{}
	// 範囲外のページは DB に問い合わせず空で返す。
	// ページ数で比較するので page*pageCount はオーバーフローしない
	pages := (count + int64(pageCount) - 1) / int64(pageCount)
	if int64(page) < pages {
		tracks, err = s.trackRepo.FindPage(ctx, s.db, page*pageCount, pageCount)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
		}
	}

	return &model.TrackPage{Data: tracks, Count: count}, nil
}

func (s *trackService) SeedTracks(ctx context.Context, tracks []*model.Track) (int, error) {
	logger := middleware.GetLogger(ctx)
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := s.trackRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("Tracks already seeded, skipping", "count", count)
			return nil
		}
		if err := s.trackRepo.CreateBatch(ctx, tx, tracks); err != nil {
			return err
		}
		inserted = len(tracks)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}
	return inserted, nil
}
