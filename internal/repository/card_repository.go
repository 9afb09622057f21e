//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardRepository はカード関連の4テーブルへのアクセスをまとめます。
// db には通常の接続かトランザクションのどちらかを渡します。
type CardRepository interface {
	FindInitialForm(ctx context.Context, db *gorm.DB, word string) (string, error)
	FindByInitialForm(ctx context.Context, db *gorm.DB, initialForm string) (*model.Card, error)
	FindUsageExamples(ctx context.Context, db *gorm.DB, ids []int64) ([]model.UsageExample, error)
	FindCommonPhrases(ctx context.Context, db *gorm.DB, ids []int64) ([]model.CommonPhrase, error)
	ListInitialForms(ctx context.Context, db *gorm.DB) ([]model.CardSummary, error)
	CreateForms(ctx context.Context, tx *gorm.DB, forms []model.Form) error
	CreateUsageExamples(ctx context.Context, tx *gorm.DB, examples []model.UsageExample) error
	CreateCommonPhrases(ctx context.Context, tx *gorm.DB, phrases []model.CommonPhrase) error
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

// FindInitialForm は活用形または見出し語に一致する forms 行を探し、その見出し語を返します。
// 複数一致した場合は行IDが最小のものを使います。
func (r *gormCardRepository) FindInitialForm(ctx context.Context, db *gorm.DB, word string) (string, error) {
	logger := middleware.GetLogger(ctx)
	var form model.Form
	result := db.WithContext(ctx).
		Where("form_name = ? OR initial_form = ?", word, word).
		Order("id").
		Limit(1).
		Find(&form)
	if result.Error != nil {
		logger.Error("Error finding form in DB", "error", result.Error, "word", word)
		return "", fmt.Errorf("gormCardRepository.FindInitialForm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", model.ErrNotFound
	}
	return form.InitialForm, nil
}

func (r *gormCardRepository) FindByInitialForm(ctx context.Context, db *gorm.DB, initialForm string) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("initial_form = ?", initialForm).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by initial form in DB", "error", result.Error, "initial_form", initialForm)
		return nil, fmt.Errorf("gormCardRepository.FindByInitialForm: %w", result.Error)
	}
	return &card, nil
}

// FindUsageExamples は ID リストの順序を保ったまま用例を返します
func (r *gormCardRepository) FindUsageExamples(ctx context.Context, db *gorm.DB, ids []int64) ([]model.UsageExample, error) {
	logger := middleware.GetLogger(ctx)
	if len(ids) == 0 {
		return []model.UsageExample{}, nil
	}
	var rows []model.UsageExample
	if err := db.WithContext(ctx).Where("usage_example_id IN ?", ids).Find(&rows).Error; err != nil {
		logger.Error("Error finding usage examples in DB", "error", err, "ids", ids)
		return nil, fmt.Errorf("gormCardRepository.FindUsageExamples: %w", err)
	}
	byID := make(map[int64]model.UsageExample, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]model.UsageExample, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		} else {
			logger.Warn("Card references missing usage example", "usage_example_id", id)
		}
	}
	return ordered, nil
}

// FindCommonPhrases は ID リストの順序を保ったままフレーズを返します
func (r *gormCardRepository) FindCommonPhrases(ctx context.Context, db *gorm.DB, ids []int64) ([]model.CommonPhrase, error) {
	logger := middleware.GetLogger(ctx)
	if len(ids) == 0 {
		return []model.CommonPhrase{}, nil
	}
	var rows []model.CommonPhrase
	if err := db.WithContext(ctx).Where("common_phrase_id IN ?", ids).Find(&rows).Error; err != nil {
		logger.Error("Error finding common phrases in DB", "error", err, "ids", ids)
		return nil, fmt.Errorf("gormCardRepository.FindCommonPhrases: %w", err)
	}
	byID := make(map[int64]model.CommonPhrase, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]model.CommonPhrase, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		} else {
			logger.Warn("Card references missing common phrase", "common_phrase_id", id)
		}
	}
	return ordered, nil
}

func (r *gormCardRepository) ListInitialForms(ctx context.Context, db *gorm.DB) ([]model.CardSummary, error) {
	logger := middleware.GetLogger(ctx)
	summaries := []model.CardSummary{}
	result := db.WithContext(ctx).Model(&model.Card{}).Select("initial_form").Order("created_at, initial_form").Scan(&summaries)
	if result.Error != nil {
		logger.Error("Error listing cards in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.ListInitialForms: %w", result.Error)
	}
	return summaries, nil
}

// CreateForms は既に同じ (initial_form, form_name) がある場合は何もしません
func (r *gormCardRepository) CreateForms(ctx context.Context, tx *gorm.DB, forms []model.Form) error {
	logger := middleware.GetLogger(ctx)
	if len(forms) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&forms)
	if result.Error != nil {
		logger.Error("Error creating forms in DB", "error", result.Error, "initial_form", forms[0].InitialForm)
		return fmt.Errorf("gormCardRepository.CreateForms: %w", result.Error)
	}
	return nil
}

// CreateUsageExamples は採番された ID を examples に書き戻します
func (r *gormCardRepository) CreateUsageExamples(ctx context.Context, tx *gorm.DB, examples []model.UsageExample) error {
	logger := middleware.GetLogger(ctx)
	if len(examples) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&examples).Error; err != nil {
		logger.Error("Error creating usage examples in DB", "error", err, "count", len(examples))
		return fmt.Errorf("gormCardRepository.CreateUsageExamples: %w", err)
	}
	return nil
}

// CreateCommonPhrases は採番された ID を phrases に書き戻します
func (r *gormCardRepository) CreateCommonPhrases(ctx context.Context, tx *gorm.DB, phrases []model.CommonPhrase) error {
	logger := middleware.GetLogger(ctx)
	if len(phrases) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&phrases).Error; err != nil {
		logger.Error("Error creating common phrases in DB", "error", err, "count", len(phrases))
		return fmt.Errorf("gormCardRepository.CreateCommonPhrases: %w", err)
	}
	return nil
}

// Create はカード行を作成します。initial_form が重複した場合は model.ErrConflict
func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	if card.CardID == uuid.Nil {
		card.CardID = uuid.New()
	}
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate initial form on create card", "error", result.Error, "initial_form", card.InitialForm)
			return model.ErrConflict
		}
		logger.Error("Error creating card in DB", "error", result.Error, "initial_form", card.InitialForm)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
