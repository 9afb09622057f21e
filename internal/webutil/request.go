package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go_4_word_card/internal/model"
)

// maxBodyBytes はリクエストボディの上限 (単語1つなので小さくてよい)
const maxBodyBytes = 1 << 16

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: empty body", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", model.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// QueryInt はクエリパラメータを整数として読みます。未指定の場合は def
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", fmt.Sprintf("%sは整数で指定してください。", fieldLabel(name)), name, model.ErrInvalidInput)
	}
	return v, nil
}
