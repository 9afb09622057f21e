package webutil

import (
	"errors"
	"testing"

	"go_4_word_card/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateCardRequest(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		wantValid bool
		wantMsg   string
	}{
		{name: "正常系: 単語", word: "run", wantValid: true},
		{name: "正常系: 複数語", word: "give up", wantValid: true},
		{name: "正常系: ハイフンとアポストロフィ", word: "o'clock-ish", wantValid: true},
		{name: "正常系: 非ASCII", word: "café", wantValid: true},
		{name: "異常系: 空", word: "", wantMsg: "単語は必須項目です。"},
		{name: "異常系: 数字", word: "r2d2", wantMsg: "単語には文字・空白・ハイフン・アポストロフィのみ使用できます。"},
		{name: "異常系: 記号", word: "<script>", wantMsg: "単語には文字・空白・ハイフン・アポストロフィのみ使用できます。"},
		{name: "異常系: 空白のみ", word: "   ", wantMsg: "単語には文字・空白・ハイフン・アポストロフィのみ使用できます。"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validator.Struct(model.CreateCardRequest{NewWord: tt.word})
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			appErr := NewValidationError(verrs)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, "new_word", appErr.Field)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.ErrorIs(t, appErr, model.ErrInvalidInput)
		})
	}
}

func TestValidator_ListTracksQuery(t *testing.T) {
	assert.NoError(t, Validator.Struct(model.ListTracksQuery{Page: 0, PageCount: 1}))

	err := Validator.Struct(model.ListTracksQuery{Page: -1, PageCount: 10})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "ページ番号は0以上で指定してください。", NewValidationError(verrs).Message)
}
