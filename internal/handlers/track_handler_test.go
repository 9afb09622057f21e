// internal/handlers/track_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"go_4_word_card/internal/config"
	"go_4_word_card/internal/model"
	"go_4_word_card/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrackHandler_GetAllTracks(t *testing.T) {
	page := &model.TrackPage{
		Data:  []*model.Track{{ID: 11, Title: "Track 11"}},
		Count: 25,
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockTrackService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "正常系: ページ指定",
			path: "/api/tracks/getAll?page=1&page_count=10",
			setupMock: func(m *mocks.MockTrackService) {
				m.On("ListTracks", mock.Anything, 1, 10).Return(page, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "正常系: 省略時はデフォルト値",
			path: "/api/tracks/getAll",
			setupMock: func(m *mocks.MockTrackService) {
				m.On("ListTracks", mock.Anything, 0, config.DefaultTracksPageCount).Return(page, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: page が数値でない",
			path:           "/api/tracks/getAll?page=abc&page_count=10",
			setupMock:      func(m *mocks.MockTrackService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "ページ番号は整数で指定してください。",
		},
		{
			name:           "異常系: page_count が数値でない",
			path:           "/api/tracks/getAll?page=0&page_count=ten",
			setupMock:      func(m *mocks.MockTrackService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "1ページの件数は整数で指定してください。",
		},
		{
			name:           "異常系: 負のページ",
			path:           "/api/tracks/getAll?page=-1&page_count=10",
			setupMock:      func(m *mocks.MockTrackService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "ページ番号は0以上",
		},
		{
			name:           "異常系: page_count が0",
			path:           "/api/tracks/getAll?page=0&page_count=0",
			setupMock:      func(m *mocks.MockTrackService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "1ページの件数は1以上",
		},
		{
			name: "異常系: DB障害",
			path: "/api/tracks/getAll?page=0&page_count=10",
			setupMock: func(m *mocks.MockTrackService) {
				m.On("ListTracks", mock.Anything, 0, 10).Return(nil, fmt.Errorf("%w: boom", model.ErrStorage)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, serverOptions{})
			tc.setupMock(ts.tracks)

			_, body := sendRequest(t, ts.server,
				httpRequestDetails{Method: http.MethodGet, Path: tc.path},
				httpResponseExpectations{ExpectedCode: tc.expectedStatus, ExpectedErrorMsg: tc.expectedMsg},
			)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var got model.TrackPage
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, int64(25), got.Count)
			require.Len(t, got.Data, 1)
			assert.Equal(t, "Track 11", got.Data[0].Title)
		})
	}
}
