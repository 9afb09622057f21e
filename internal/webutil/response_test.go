package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_4_word_card/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "辞書に無い単語", err: model.ErrWordNotFound, want: http.StatusNotFound},
		{name: "解釈できない応答", err: fmt.Errorf("%w: x", model.ErrMalformedReply), want: http.StatusNotFound},
		{name: "未登録", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "入力不正", err: model.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "AppError でラップした入力不正", err: model.NewAppError("X", "m", "", model.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "競合", err: model.ErrConflict, want: http.StatusConflict},
		{name: "オラクル障害", err: fmt.Errorf("%w: %w", model.ErrOracleUnavailable, errors.New("timeout")), want: http.StatusBadGateway},
		{name: "DB障害", err: fmt.Errorf("%w: x", model.ErrStorage), want: http.StatusInternalServerError},
		{name: "不明なエラー", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("AppError は詳細をそのまま返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, model.NewAppError("VALIDATION_ERROR", "単語は必須項目です。", "new_word", model.ErrInvalidInput))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Equal(t, "new_word", resp.Error.Field)
	})

	t.Run("内部エラーの詳細はクライアントに出さない", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, fmt.Errorf("%w: password=hunter2", model.ErrStorage))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hunter2")
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
	})
}

func TestRespondWithText(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithText(rr, http.StatusNotFound, WordNotFoundMessage)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "The word does not exist!", rr.Body.String())
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "正常系", body: `{"new_word":"run"}`},
		{name: "空ボディ", body: "", wantErr: true},
		{name: "未知のフィールド", body: `{"word":"run"}`, wantErr: true},
		{name: "壊れた JSON", body: `{"new_word":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/cards/create", strings.NewReader(tt.body))
			var dst model.CreateCardRequest
			err := DecodeJSONBody(req, &dst)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "run", dst.NewWord)
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tracks/getAll?page=3&page_count=x", nil)

	page, err := QueryInt(req, "page", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	def, err := QueryInt(req, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, def)

	_, err = QueryInt(req, "page_count", 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
