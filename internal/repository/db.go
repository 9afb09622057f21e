package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は PostgreSQL に接続した *gorm.DB を返します
func NewDB(dsn string, appLogger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), NewGormConfig(appLogger))
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, err
	}

	// コネクションプールの設定
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")
	return db, nil
}

// NewGormConfig は slog を使う GORM 設定を返します (テストの sqlite 接続でも共通)
func NewGormConfig(appLogger *slog.Logger) *gorm.Config {
	// APP_ENV=dev の場合は SQL も出力する
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値
	)

	return &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	}
}
