// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_4_word_card/internal/model"

	"github.com/go-playground/validator/v10"
)

// WordNotFoundMessage はカードが作れなかった場合に返す本文 (text/plain)
const WordNotFoundMessage = "The word does not exist!"

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
	case statusCode == http.StatusBadRequest:
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: "リクエストの形式が正しくありません。",
		}}
	case statusCode == http.StatusNotFound:
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "NOT_FOUND",
			Message: "リソースが見つかりません。",
		}}
	case statusCode == http.StatusBadGateway:
		logger.Error("Upstream error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "UPSTREAM_UNAVAILABLE",
			Message: "辞書生成サービスに接続できませんでした。",
		}}
	default:
		// ログには詳細なエラーを出力し、クライアントには汎用メッセージを返す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "サーバー内部でエラーが発生しました。",
		}}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrWordNotFound),
		errors.Is(err, model.ErrMalformedReply),
		errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrOracleUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Warn("Error writing response", slog.Any("error", err))
	}
}

// RespondWithText はプレーンテキストのレスポンスを返します
func RespondWithText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(body))
}

// NewValidationError はバリデーションエラーの先頭1件を日本語メッセージの AppError にします
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}
