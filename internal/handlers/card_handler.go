// internal/handlers/card_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"
	"go_4_word_card/internal/service"
	"go_4_word_card/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// CardSourceHeader はカードがキャッシュから返ったか生成されたかを示すレスポンスヘッダ
const CardSourceHeader = "X-Card-Source"

type CardHandler struct {
	service service.CardService
	// legacyNotFound が true ならオラクル障害も 404 で返す
	legacyNotFound bool
}

func NewCardHandler(s service.CardService, legacyNotFound bool) *CardHandler {
	return &CardHandler{
		service:        s,
		legacyNotFound: legacyNotFound,
	}
}

// CreateCard はキャッシュ済みのカードを返すか、無ければ生成して返すハンドラ
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateCard"))

	var req model.CreateCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.String("new_word", req.NewWord))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}
	logger = logger.With(slog.String("new_word", req.NewWord))

	result, err := h.service.CreateCard(r.Context(), req.NewWord)
	if err != nil {
		h.handleCreateError(w, logger, err)
		return
	}

	source := "generated"
	if result.Cached {
		source = "cache"
	}
	logger.Info("Card returned", slog.String("initial_form", result.Card.InitialForm), slog.String("source", source))
	w.Header().Set(CardSourceHeader, source)
	webutil.RespondWithJSON(w, http.StatusOK, result.Card, logger)
}

// handleCreateError はカードが作れなかった理由ごとにレスポンスを分けます
func (h *CardHandler) handleCreateError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrWordNotFound):
		logger.Info("Word does not exist")
		webutil.RespondWithText(w, http.StatusNotFound, webutil.WordNotFoundMessage)
	case errors.Is(err, model.ErrMalformedReply):
		logger.Warn("Oracle reply was malformed", slog.Any("error", err))
		webutil.RespondWithText(w, http.StatusNotFound, webutil.WordNotFoundMessage)
	case errors.Is(err, model.ErrOracleUnavailable) && h.legacyNotFound:
		logger.Error("Oracle unavailable", slog.Any("error", err))
		webutil.RespondWithText(w, http.StatusNotFound, webutil.WordNotFoundMessage)
	default:
		logger.Error("Error creating card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
}

// GetAllCards は保存済みカードの見出し語一覧を返すハンドラ
func (h *CardHandler) GetAllCards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetAllCards"))

	cards, err := h.service.ListCards(r.Context())
	if err != nil {
		logger.Error("Error listing cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []model.CardSummary{}
	}
	logger.Info("Cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}
