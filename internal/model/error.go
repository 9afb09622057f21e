// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("resource conflict") // 重複エラー用
)

// 単語カード生成フローのエラー種別
// ハンドラで HTTP ステータスに変換するまでは区別したまま扱う
var (
	// ErrWordNotFound はオラクルが「辞書に存在しない単語」と答えた場合 (null 応答)
	ErrWordNotFound = errors.New("word does not exist")
	// ErrMalformedReply はオラクルの応答が JSON として解釈できない場合
	ErrMalformedReply = errors.New("malformed oracle reply")
	// ErrOracleUnavailable は通信失敗・クォータ超過・タイムアウト・APIキー未設定
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrStorage はDB障害。キャッシュミスとは別物
	ErrStorage = errors.New("storage failure")
)

// AppError はクライアントに返すエラー情報と根本原因のエラーを保持します
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用のエラー詳細を返します
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
	}
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
