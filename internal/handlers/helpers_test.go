// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_4_word_card/internal/config"
	"go_4_word_card/internal/handlers"
	"go_4_word_card/internal/model"
	"go_4_word_card/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode     int
	ExpectedErrorMsg string
}

type testServer struct {
	server *httptest.Server
	cards  *mocks.MockCardService
	tracks *mocks.MockTrackService
}

type serverOptions struct {
	legacyNotFound bool
	health         handlers.HealthChecker
}

// newTestServer はモックサービスを使うルーターを立ち上げます
func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	cards := mocks.NewMockCardService(t)
	tracks := mocks.NewMockTrackService(t)

	router := handlers.NewRouter(
		handlers.RouterConfig{
			CORS: config.CORSConfig{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				ExposedHeaders: []string{handlers.CardSourceHeader},
			},
			RequestTimeout: 5 * time.Second,
		},
		testLogger,
		handlers.NewCardHandler(cards, opts.legacyNotFound),
		handlers.NewTrackHandler(tracks, config.DefaultTracksPageCount),
		opts.health,
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{server: server, cards: cards, tracks: tracks}
}

// sendRequest はHTTPリクエストを送信し、レスポンスを返します。
// ステータスコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (*http.Response, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorMsg)
	return resp, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのボディを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedErrorMsgPart string) {
	t.Helper()
	if expectedErrorMsgPart == "" {
		return
	}

	var errResp model.APIErrorResponse
	if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error.Message != "" {
		assert.Contains(t, errResp.Error.Message, expectedErrorMsgPart)
		return
	}
	assert.Contains(t, string(bodyBytes), expectedErrorMsgPart)
}
