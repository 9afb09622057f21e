// internal/handlers/track_handler.go
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

type TrackHandler struct {
	service          service.TrackService
	defaultPageCount int
}

func NewTrackHandler(s service.TrackService, defaultPageCount int) *TrackHandler {
	return &TrackHandler{
		service:          s,
		defaultPageCount: defaultPageCount,
	}
}

// GetAllTracks は ?page=P&page_count=C でページングしたトラック一覧を返すハンドラ
func (h *TrackHandler) GetAllTracks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetAllTracks"))

	var query model.ListTracksQuery
	var err error
	if query.Page, err = webutil.QueryInt(r, "page", 0); err != nil {
		logger.Warn("Invalid page parameter", slog.String("page", r.URL.Query().Get("page")))
		webutil.HandleError(w, logger, err)
		return
	}
	if query.PageCount, err = webutil.QueryInt(r, "page_count", h.defaultPageCount); err != nil {
		logger.Warn("Invalid page_count parameter", slog.String("page_count", r.URL.Query().Get("page_count")))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.Validator.Struct(query); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	page, err := h.service.ListTracks(r.Context(), query.Page, query.PageCount)
	if err != nil {
		logger.Error("Error listing tracks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tracks listed successfully", slog.Int("page", query.Page), slog.Int("returned", len(page.Data)), slog.Int64("count", page.Count))
	webutil.RespondWithJSON(w, http.StatusOK, page, logger)
}
