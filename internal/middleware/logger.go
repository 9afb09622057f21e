package middleware

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel は config.yaml の log.level を slog.Level に変換します。
// 不明な値の場合は Info と false を返します。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewAppLogger はアプリケーション全体のロガーを作ります。
// APP_ENV=dev なら tint のカラー出力、それ以外は JSON 出力 (ソース位置付き)
func NewAppLogger(w io.Writer, level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	lvl, ok := ParseLevel(level)
	logLevel.Set(lvl)

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}
