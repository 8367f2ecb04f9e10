package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neo/pwmeter/internal/logging"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Status     int       `json:"status"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Path       string    `json:"path"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	ErrorCode  string    `json:"error_code,omitempty"`
	DevMessage string    `json:"-"` // For logging only, not sent to client
}

// APIError carries the status and client-facing message of a handler failure
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// abortWithError records the error for ErrorHandler and stops the chain
func abortWithError(c *gin.Context, status int, code, message string, err error) {
	_ = c.Error(&APIError{Status: status, Code: code, Message: message, Err: err})
	c.Status(status)
	c.Abort()
}

// ErrorHandler renders the last handler error as an ErrorResponse
func ErrorHandler(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := c.Writer.Status()
		if status < 400 {
			status = http.StatusInternalServerError
		}

		errorResponse := ErrorResponse{
			Status:    status,
			Message:   "An error occurred while processing your request",
			Path:      c.Request.URL.Path,
			Timestamp: time.Now(),
			RequestID: c.GetString("RequestID"),
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			errorResponse.Status = apiErr.Status
			errorResponse.ErrorCode = apiErr.Code
			errorResponse.Message = apiErr.Message
			status = apiErr.Status
		}

		if development {
			errorResponse.Details = err.Error()
			errorResponse.DevMessage = string(debug.Stack())
		}

		if status >= http.StatusInternalServerError {
			sentry.CaptureException(err)
			logging.Error("Request failed", map[string]interface{}{
				"path":       errorResponse.Path,
				"request_id": errorResponse.RequestID,
				"error":      err.Error(),
			})
		} else {
			logging.Debug("Request rejected", map[string]interface{}{
				"path":       errorResponse.Path,
				"request_id": errorResponse.RequestID,
				"error_code": errorResponse.ErrorCode,
			})
		}

		c.JSON(status, gin.H{"error": errorResponse})
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("RequestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware logs all requests
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logging.LogHTTPRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), map[string]interface{}{
			"request_id": c.GetString("RequestID"),
		})
	}
}

// RecoveryMiddleware recovers from panics and reports them to Sentry
func RecoveryMiddleware(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				logging.Error("Panic recovered", map[string]interface{}{
					"path":  c.Request.URL.Path,
					"panic": fmt.Sprintf("%v", err),
				})

				errorResponse := ErrorResponse{
					Status:    http.StatusInternalServerError,
					Message:   "An unexpected error occurred",
					Path:      c.Request.URL.Path,
					Timestamp: time.Now(),
					RequestID: c.GetString("RequestID"),
				}

				if development {
					errorResponse.Details = fmt.Sprintf("%v", err)
					errorResponse.DevMessage = string(debug.Stack())
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errorResponse})
			}
		}()
		c.Next()
	}
}
