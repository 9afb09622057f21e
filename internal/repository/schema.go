package repository

import (
	"context"
	"fmt"

	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"

	"gorm.io/gorm"
)

// schemaLockKey は pg_advisory_xact_lock に使うキー (任意の固定値)
const schemaLockKey = 727_001

// cardTables はカード機能に必要な4テーブル。作成順もこの順
func cardTables() []interface{} {
	return []interface{}{
		&model.Card{},
		&model.Form{},
		&model.UsageExample{},
		&model.CommonPhrase{},
	}
}

// EnsureSchema は必要なテーブルを確認し、存在しないものだけ作成します。
// 何度呼んでも結果は同じ。起動時に1回だけ呼ぶ想定です。
// 途中のテーブル作成に失敗した場合、それ以前のテーブルは残りますが、
// 次回の呼び出しでテーブルごとに再確認されるので問題ありません。
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	logger := middleware.GetLogger(ctx)
	tables := append(cardTables(), &model.Track{})

	if db.Dialector.Name() != "postgres" {
		return createMissingTables(ctx, db, tables)
	}

	// PostgreSQL では複数プロセスが同時に起動しても競合しないようにロックを取る
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", schemaLockKey).Error; err != nil {
			logger.Error("Failed to acquire schema advisory lock", "error", err)
			return fmt.Errorf("repository.EnsureSchema: advisory lock: %w", err)
		}
		return createMissingTables(ctx, tx, tables)
	})
}

func createMissingTables(ctx context.Context, db *gorm.DB, tables []interface{}) error {
	logger := middleware.GetLogger(ctx)
	migrator := db.WithContext(ctx).Migrator()
	for _, t := range tables {
		if migrator.HasTable(t) {
			continue
		}
		if err := migrator.CreateTable(t); err != nil {
			logger.Error("Failed to create table", "error", err, "model", fmt.Sprintf("%T", t))
			return fmt.Errorf("repository.EnsureSchema: create %T: %w", t, err)
		}
		logger.Info("Table created", "model", fmt.Sprintf("%T", t))
	}
	return nil
}
