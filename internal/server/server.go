package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/neo/pwmeter/internal/analyzer"
	"github.com/neo/pwmeter/internal/logging"
	"github.com/neo/pwmeter/internal/types"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 10 * time.Second

// Server hosts the analysis engine over HTTP and WebSocket
type Server struct {
	router   *gin.Engine
	config   Config
	settings *SettingsManager
	upgrader websocket.Upgrader
}

// NewServer creates a new HTTP server with WebSocket support
func NewServer(config Config, settings *SettingsManager) *Server {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(config.IsDevelopment()))
	router.Use(LoggingMiddleware())
	router.Use(CORSMiddleware(config.CORSOrigins))
	router.Use(ErrorHandler(config.IsDevelopment()))

	server := &Server{
		router:   router,
		config:   config,
		settings: settings,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(config.CORSOrigins, r.Header.Get("Origin"))
			},
			EnableCompression: true,
		},
	}

	router.GET("/health", server.healthHandler)
	router.GET("/ws/analyze", server.handleAnalyzeWebSocket)

	api := router.Group("/api")
	{
		api.POST("/analyze", server.analyzeHandler)
		api.POST("/analyze/batch", server.batchAnalyzeHandler)
		api.GET("/settings", server.settingsHandler)
	}

	return server
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// analyze applies the input ceiling, runs the engine and logs the outcome.
func (s *Server) analyze(source, requestID, password string) (analyzer.Result, error) {
	if err := analyzer.Guard(password, s.settings.Get().MaxPasswordLength); err != nil {
		return analyzer.Result{}, err
	}

	start := time.Now()
	result := analyzer.Analyze(password)
	if !result.Idle() {
		logging.LogAnalysisEvent(source, requestID, types.CodeUnits(password), result.Score, result.Tier.String(), time.Since(start))
	}
	return result, nil
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logging.Info("Starting HTTP server", map[string]interface{}{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("Shutting down HTTP server", map[string]interface{}{"timeout": shutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
