// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "WordCard"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8000"
	DefaultLogLevel           = "info"
	DefaultOracleModel        = "gpt-4o-mini"
	DefaultOracleTemperature  = 1.0
	DefaultOracleMaxTokens    = 2048
	DefaultOracleTimeout      = 30 * time.Second
	DefaultOracleMaxRetries   = 2
	DefaultTracksPageCount    = 10
	DefaultTracksMaxPageCount = 100
)
