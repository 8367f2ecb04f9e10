package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo/pwmeter/internal/analyzer"
	"github.com/neo/pwmeter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, settings Settings) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := NewSettingsManager("")
	require.NoError(t, err)
	manager.settings = settings

	return NewServer(Config{CORSOrigins: []string{"*"}}, manager)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

// TestHealthRoute tests the health route
func TestHealthRoute(t *testing.T) {
	s := newTestServer(t, DefaultSettings())

	w := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAnalyzeHandler(t *testing.T) {
	s := newTestServer(t, DefaultSettings())

	w := doJSON(t, s, http.MethodPost, "/api/analyze", gin.H{"password": "password"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result analyzer.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, types.StateAnalyzing, body.Result.State)
	assert.Equal(t, types.TierWeak, body.Result.Tier)
	assert.Contains(t, body.Result.Findings, `Contains common sequence: "password"`)
	require.NotNil(t, body.Result.Report)
	assert.Equal(t, "8 characters", body.Result.Report.Length)
	assert.NotContains(t, w.Body.String(), `"password":`)
}

func TestAnalyzeHandlerEmptyPasswordIsIdle(t *testing.T) {
	s := newTestServer(t, DefaultSettings())

	w := doJSON(t, s, http.MethodPost, "/api/analyze", gin.H{"password": ""})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result analyzer.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Result.Idle())
	assert.Nil(t, body.Result.Report)
}

func TestAnalyzeHandlerRejects(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxPasswordLength = 16
	s := newTestServer(t, settings)

	testCases := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedCode   string
	}{
		{name: "missing password", body: gin.H{}, expectedStatus: http.StatusBadRequest, expectedCode: "invalid_request"},
		{name: "wrong type", body: gin.H{"password": 42}, expectedStatus: http.StatusBadRequest, expectedCode: "invalid_request"},
		{name: "too long", body: gin.H{"password": strings.Repeat("x", 17)}, expectedStatus: http.StatusRequestEntityTooLarge, expectedCode: "password_too_long"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/api/analyze", tc.body)
			assert.Equal(t, tc.expectedStatus, w.Code)

			var body struct {
				Error ErrorResponse `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedCode, body.Error.ErrorCode)
		})
	}
}

func TestBatchAnalyzeHandler(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxBatchSize = 3
	s := newTestServer(t, settings)

	w := doJSON(t, s, http.MethodPost, "/api/analyze/batch", gin.H{"passwords": []string{"", "aaaaaaaa", "Tr0ub4dor&3"}})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []analyzer.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 3)
	assert.True(t, body.Results[0].Idle())
	assert.Equal(t, types.TierWeak, body.Results[1].Tier)
	assert.Equal(t, types.TierStrong, body.Results[2].Tier)

	w = doJSON(t, s, http.MethodPost, "/api/analyze/batch", gin.H{"passwords": []string{"a", "b", "c", "d"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "batch_too_large")
}

func TestBatchAnalyzeHandlerDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.EnableBatch = false
	s := newTestServer(t, settings)

	w := doJSON(t, s, http.MethodPost, "/api/analyze/batch", gin.H{"passwords": []string{"a"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "feature_disabled")
}

func TestSettingsRoute(t *testing.T) {
	s := newTestServer(t, DefaultSettings())

	w := doJSON(t, s, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Settings Settings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, DefaultSettings(), body.Settings)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, DefaultSettings())

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
