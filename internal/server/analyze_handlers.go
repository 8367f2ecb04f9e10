package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neo/pwmeter/internal/analyzer"
)

// ErrBatchTooLarge is returned when a batch exceeds max_batch_size
var ErrBatchTooLarge = errors.New("batch too large")

// AnalyzeRequest is the body of POST /api/analyze. Password is a pointer so an
// empty string (the idle state) is still a valid request.
type AnalyzeRequest struct {
	Password *string `json:"password" binding:"required"`
}

// BatchAnalyzeRequest is the body of POST /api/analyze/batch
type BatchAnalyzeRequest struct {
	Passwords []string `json:"passwords" binding:"required"`
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) settingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": s.settings.Get()})
}

func (s *Server) analyzeHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid_request", "Invalid request", err)
		return
	}

	result, err := s.analyze("http", c.GetString("RequestID"), *req.Password)
	if err != nil {
		abortWithError(c, http.StatusRequestEntityTooLarge, "password_too_long", "Password is too long", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (s *Server) batchAnalyzeHandler(c *gin.Context) {
	settings := s.settings.Get()
	if !settings.EnableBatch {
		abortWithError(c, http.StatusNotFound, "feature_disabled", "Batch analysis is disabled", nil)
		return
	}

	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid_request", "Invalid request", err)
		return
	}

	if settings.MaxBatchSize > 0 && len(req.Passwords) > settings.MaxBatchSize {
		err := fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(req.Passwords), settings.MaxBatchSize)
		abortWithError(c, http.StatusBadRequest, "batch_too_large", fmt.Sprintf("At most %d passwords per batch", settings.MaxBatchSize), err)
		return
	}

	requestID := c.GetString("RequestID")
	results := make([]analyzer.Result, 0, len(req.Passwords))
	for i, password := range req.Passwords {
		result, err := s.analyze("batch", requestID, password)
		if err != nil {
			abortWithError(c, http.StatusRequestEntityTooLarge, "password_too_long", fmt.Sprintf("Password at index %d is too long", i), err)
			return
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
