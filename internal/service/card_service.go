//go:generate mockery --name CardService --output ./mocks --outpkg mocks --structname MockCardService --filename card_service.go
// internal/service/card_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"
	"go_4_word_card/internal/repository"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type CardService interface {
	// FindCard はキャッシュ済みのカードを返します。未登録の場合は model.ErrNotFound
	FindCard(ctx context.Context, word string) (*model.Card, error)
	// CreateCard はキャッシュを確認し、無ければオラクルで生成して保存します
	CreateCard(ctx context.Context, word string) (*model.CardResult, error)
	ListCards(ctx context.Context) ([]model.CardSummary, error)
}

type cardService struct {
	db        *gorm.DB
	cardRepo  repository.CardRepository
	generator CardGenerator
	// 同じ単語の生成はプロセス内で1つにまとめる
	flights singleflight.Group
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository, generator CardGenerator) CardService {
	return &cardService{
		db:        db,
		cardRepo:  cardRepo,
		generator: generator,
	}
}

func (s *cardService) FindCard(ctx context.Context, word string) (*model.Card, error) {
	word = model.NormalizeWord(word)
	if word == "" {
		return nil, model.ErrInvalidInput
	}
	return s.findCard(ctx, s.db, word)
}

// findCard は forms テーブルで見出し語を引き、カードと関連する用例・フレーズを解決します
func (s *cardService) findCard(ctx context.Context, db *gorm.DB, word string) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("word", word)

	// 1. 活用形 -> 見出し語
	initialForm, err := s.cardRepo.FindInitialForm(ctx, db, word)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}

	// 2. 見出し語 -> カード
	card, err := s.cardRepo.FindByInitialForm(ctx, db, initialForm)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 旧データには forms だけ残っている場合がある
			logger.Warn("Form row has no card", "initial_form", initialForm)
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}
	return s.resolveCard(ctx, db, card)
}

// findCardByInitialForm は forms を経由せず、見出し語そのもののカードを引きます
func (s *cardService) findCardByInitialForm(ctx context.Context, db *gorm.DB, initialForm string) (*model.Card, error) {
	card, err := s.cardRepo.FindByInitialForm(ctx, db, initialForm)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}
	return s.resolveCard(ctx, db, card)
}

// resolveCard はカードの ID リストを実体に解決します (common_phrases は common_phrases の ID で引く)
func (s *cardService) resolveCard(ctx context.Context, db *gorm.DB, card *model.Card) (*model.Card, error) {
	examples, err := s.cardRepo.FindUsageExamples(ctx, db, card.UsageExampleIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}
	phrases, err := s.cardRepo.FindCommonPhrases(ctx, db, card.CommonPhraseIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}
	card.UsageExamples = examples
	card.CommonPhrases = phrases
	return card, nil
}

func (s *cardService) CreateCard(ctx context.Context, word string) (*model.CardResult, error) {
	word = model.NormalizeWord(word)
	if word == "" {
		return nil, model.ErrInvalidInput
	}
	logger := middleware.GetLogger(ctx).With("word", word)

	card, err := s.findCard(ctx, s.db, word)
	if err == nil {
		logger.Info("Card cache hit", "initial_form", card.InitialForm)
		return &model.CardResult{Card: card, Cached: true}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	// 同時に来た同じ単語のリクエストは1回の生成結果を共有する。
	// 最初の呼び出し元がキャンセルしても他の待ち手に影響しないよう、キャンセルは切り離す
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := s.flights.Do(word, func() (interface{}, error) {
		return s.generateAndStore(flightCtx, word)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("Card generation shared with concurrent request")
	}
	return v.(*model.CardResult), nil
}

func (s *cardService) generateAndStore(ctx context.Context, word string) (*model.CardResult, error) {
	logger := middleware.GetLogger(ctx).With("word", word)

	// 1. 直前の生成で保存済みになっていないか再確認
	if card, err := s.findCard(ctx, s.db, word); err == nil {
		return &model.CardResult{Card: card, Cached: true}, nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	// 2. オラクルで生成
	generated, err := s.generator.Generate(ctx, word)
	if err != nil {
		return nil, err
	}
	initialForm := model.NormalizeWord(generated.InitialForm)

	// 3. 見出し語のカードが既にある場合 (例: "Runnin" -> "Run") は活用形だけ追加して既存を返す。
	// 別のカードの活用形に過ぎない見出し語 (例: "See" の "Saw") はここでは一致させない
	existing, err := s.findCardByInitialForm(ctx, s.db, initialForm)
	if err == nil {
		if err := s.cardRepo.CreateForms(ctx, s.db, []model.Form{{InitialForm: existing.InitialForm, FormName: word}}); err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
		}
		logger.Info("Generated word maps to existing card", "initial_form", existing.InitialForm)
		return &model.CardResult{Card: existing, Cached: true}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	// 4. 保存。別プロセスが先に保存していた場合は保存済みのカードを返す
	card, err := s.persistCard(ctx, word, generated)
	if errors.Is(err, model.ErrConflict) {
		logger.Info("Card was stored concurrently, re-reading", "initial_form", initialForm)
		stored, findErr := s.findCardByInitialForm(ctx, s.db, initialForm)
		if findErr != nil {
			return nil, findErr
		}
		return &model.CardResult{Card: stored, Cached: true}, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Card generated and stored", "initial_form", card.InitialForm, "card_id", card.CardID.String())
	return &model.CardResult{Card: card, Cached: false}, nil
}

// persistCard は1つのトランザクションで forms / usage_examples / common_phrases / cards に書き込みます。
// どこかで失敗した場合はすべてロールバックされます。
func (s *cardService) persistCard(ctx context.Context, word string, generated *model.GeneratedCard) (*model.Card, error) {
	initialForm := model.NormalizeWord(generated.InitialForm)
	forms := model.NormalizeForms(initialForm, append(append([]string{}, generated.Forms...), word))

	examples := make([]model.UsageExample, 0, len(generated.UsageExamples))
	for _, e := range generated.UsageExamples {
		example := strings.TrimSpace(e.Example)
		if example == "" {
			continue
		}
		examples = append(examples, model.UsageExample{Example: example, PartOfSpeech: strings.TrimSpace(e.PartOfSpeech)})
	}
	phrases := make([]model.CommonPhrase, 0, len(generated.CommonPhrases))
	for _, p := range generated.CommonPhrases {
		phrase := strings.TrimSpace(p.Phrase)
		if phrase == "" {
			continue
		}
		phrases = append(phrases, model.CommonPhrase{Phrase: phrase, Meaning: strings.TrimSpace(p.Meaning)})
	}
	synonyms := make(model.StringList, 0, len(generated.Synonyms))
	for _, syn := range generated.Synonyms {
		if syn = strings.TrimSpace(syn); syn != "" {
			synonyms = append(synonyms, syn)
		}
	}

	card := &model.Card{
		InitialForm:   initialForm,
		Forms:         model.StringList(forms),
		Pronunciation: model.WrapPronunciation(generated.Pronunciation),
		Synonyms:      synonyms,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 活用形
		formRows := make([]model.Form, 0, len(forms))
		for _, f := range forms {
			formRows = append(formRows, model.Form{InitialForm: initialForm, FormName: f})
		}
		if err := s.cardRepo.CreateForms(ctx, tx, formRows); err != nil {
			return err
		}

		// 2. 用例 (採番されたIDを控える)
		if err := s.cardRepo.CreateUsageExamples(ctx, tx, examples); err != nil {
			return err
		}
		// 3. フレーズ
		if err := s.cardRepo.CreateCommonPhrases(ctx, tx, phrases); err != nil {
			return err
		}

		// 4. カード本体
		card.UsageExampleIDs = make(model.Int64List, 0, len(examples))
		for _, e := range examples {
			card.UsageExampleIDs = append(card.UsageExampleIDs, e.ID)
		}
		card.CommonPhraseIDs = make(model.Int64List, 0, len(phrases))
		for _, p := range phrases {
			card.CommonPhraseIDs = append(card.CommonPhraseIDs, p.ID)
		}
		return s.cardRepo.Create(ctx, tx, card)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.ErrConflict
		}
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}

	card.UsageExamples = examples
	card.CommonPhrases = phrases
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context) ([]model.CardSummary, error) {
	cards, err := s.cardRepo.ListInitialForms(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}
	return cards, nil
}
