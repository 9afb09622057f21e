// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go_4_word_card/internal/model"
	"go_4_word_card/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupTestDB はテストごとに独立したインメモリ SQLite を作り、スキーマを作成します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), repository.NewGormConfig(discardLogger))
	require.NoError(t, err, "failed to connect database for testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 共有キャッシュでのロック競合を避けるため接続は1本にする
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.EnsureSchema(context.Background(), db))
	return db
}

// fakeGenerator は単語ごとに決まったカードを返す CardGenerator です
type fakeGenerator struct {
	mu    sync.Mutex
	cards map[string]*model.GeneratedCard
	err   error
	delay time.Duration
	calls atomic.Int32
	words []string
}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{cards: map[string]*model.GeneratedCard{}}
}

func (g *fakeGenerator) Generate(ctx context.Context, word string) (*model.GeneratedCard, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.words = append(g.words, word)
	card, ok := g.cards[word]
	err := g.err
	g.mu.Unlock()

	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrWordNotFound
	}
	copied := *card
	return &copied, nil
}

func runGeneratedCard() *model.GeneratedCard {
	return &model.GeneratedCard{
		InitialForm:   "Run",
		Forms:         []string{"Run", "Runs", "Ran", "Running"},
		Synonyms:      []string{"Sprint", "Dash", "Jog"},
		Pronunciation: "/rʌn/",
		UsageExamples: []model.GeneratedExample{
			{Example: "I run every morning.", PartOfSpeech: "verb"},
			{Example: "She went for a run.", PartOfSpeech: "noun"},
			{Example: "The river runs south.", PartOfSpeech: "verb"},
		},
		CommonPhrases: []model.GeneratedPhrase{
			{Phrase: "In the long run", Meaning: "Eventually"},
			{Phrase: "Run out of", Meaning: "To have no more of something"},
		},
	}
}

// failingCardRepository は Create だけ失敗させるリポジトリです
type failingCardRepository struct {
	repository.CardRepository
	err error
}

func (r *failingCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	return r.err
}

// hiddenCardRepository は最初の hidden 回だけ FindByInitialForm を未登録扱いにします
type hiddenCardRepository struct {
	repository.CardRepository
	mu     sync.Mutex
	hidden int
}

func (r *hiddenCardRepository) FindByInitialForm(ctx context.Context, db *gorm.DB, initialForm string) (*model.Card, error) {
	r.mu.Lock()
	hide := r.hidden > 0
	if hide {
		r.hidden--
	}
	r.mu.Unlock()
	if hide {
		return nil, model.ErrNotFound
	}
	return r.CardRepository.FindByInitialForm(ctx, db, initialForm)
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
