package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupRouter    func(*gin.Engine)
		development    bool
		expectedStatus int
		expectedCode   string
		expectDetails  bool
	}{
		{
			name: "No error",
			setupRouter: func(r *gin.Engine) {
				r.GET("/test", func(c *gin.Context) {
					c.JSON(http.StatusOK, gin.H{"status": "ok"})
				})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Plain error",
			setupRouter: func(r *gin.Engine) {
				r.GET("/test", func(c *gin.Context) {
					_ = c.Error(errors.New("test error"))
				})
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "API error",
			setupRouter: func(r *gin.Engine) {
				r.GET("/test", func(c *gin.Context) {
					abortWithError(c, http.StatusRequestEntityTooLarge, "password_too_long", "Password is too long", errors.New("4097 > 4096"))
				})
			},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedCode:   "password_too_long",
		},
		{
			name: "API error in development mode",
			setupRouter: func(r *gin.Engine) {
				r.GET("/test", func(c *gin.Context) {
					abortWithError(c, http.StatusBadRequest, "invalid_request", "Invalid request", errors.New("bad json"))
				})
			},
			development:    true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
			expectDetails:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestIDMiddleware())
			router.Use(ErrorHandler(tc.development))
			tc.setupRouter(router)

			req, err := http.NewRequest(http.MethodGet, "/test", nil)
			require.NoError(t, err)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "ok")
				return
			}

			var body struct {
				Error ErrorResponse `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedStatus, body.Error.Status)
			assert.Equal(t, tc.expectedCode, body.Error.ErrorCode)
			assert.Equal(t, "/test", body.Error.Path)
			assert.Equal(t, w.Header().Get("X-Request-ID"), body.Error.RequestID)
			if tc.expectDetails {
				assert.Contains(t, body.Error.Details, "bad json")
			} else {
				assert.Empty(t, body.Error.Details)
			}
		})
	}
}

func TestRequestIDMiddlewareKeepsClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("RequestID"))
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied", w.Body.String())
	assert.Equal(t, "client-supplied", w.Header().Get("X-Request-ID"))
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		development    bool
		expectDetails  bool
		expectedStatus int
	}{
		{name: "production hides details", development: false, expectedStatus: http.StatusInternalServerError},
		{name: "development shows details", development: true, expectDetails: true, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestIDMiddleware())
			router.Use(RecoveryMiddleware(tc.development))
			router.GET("/panic", func(c *gin.Context) {
				panic("test panic")
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), "An unexpected error occurred")
			if tc.expectDetails {
				assert.Contains(t, w.Body.String(), "test panic")
			} else {
				assert.NotContains(t, w.Body.String(), "test panic")
			}
		})
	}
}
