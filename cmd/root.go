package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/neo/pwmeter/internal/logging"
	"github.com/neo/pwmeter/internal/server"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "pwmeter",
	Short: "pwmeter - password strength estimator",
	Long: `pwmeter scores a password, classifies it as Weak, Fair, Good or Strong,
estimates an offline brute-force crack time and reports common weaknesses.
It can run as a one-shot CLI or as an HTTP/WebSocket service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		return setupLogging(server.LoadConfig())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "config", "c", ".env", "env file to load")
}

func setupLogging(cfg server.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	return logging.InitDefaultLogger(logging.Config{
		Level:       level,
		Prefix:      "pwmeter",
		Colored:     cfg.IsDevelopment(),
		LogToFile:   cfg.LogFile != "",
		LogFilePath: cfg.LogFile,
		Output:      os.Stderr,
	})
}
