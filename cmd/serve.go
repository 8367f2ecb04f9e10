package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/neo/pwmeter/internal/logging"
	"github.com/neo/pwmeter/internal/server"
	"github.com/spf13/cobra"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pwmeter HTTP server",
	Long: `Start the analysis service. It exposes POST /api/analyze,
POST /api/analyze/batch, GET /api/settings and the keystroke stream at
GET /ws/analyze.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.LoadConfig()
		if cmd.Flags().Changed("port") || cfg.Port == "" {
			cfg.Port = fmt.Sprintf("%d", port)
		}
		if cfg.GinMode != "" {
			gin.SetMode(cfg.GinMode)
		}

		if cfg.SentryDSN != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:         cfg.SentryDSN,
				Environment: cfg.AppEnv,
			}); err != nil {
				return fmt.Errorf("failed to initialize sentry: %w", err)
			}
			defer sentry.Flush(2 * time.Second)
		}

		settings, err := server.NewSettingsManager(cfg.SettingsPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.NewServer(cfg, settings)
		if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
			sentry.CaptureException(err)
			return err
		}

		logging.Info("Shutdown completed gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the server on")
}
