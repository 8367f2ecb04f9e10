package cmd

import (
	"fmt"
	"os"

	"github.com/neo/pwmeter/internal/server"
	"github.com/spf13/cobra"
)

const envTemplate = `# Server Configuration
PORT=8080
APP_ENV=development
GIN_MODE=debug

# Logging
LOG_LEVEL=info
# LOG_FILE=logs/pwmeter.log

# Runtime settings file
SETTINGS_PATH=settings.json

# Comma separated list, * allows any origin
CORS_ORIGINS=*

# Error reporting (optional)
# SENTRY_DSN=
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write .env and settings.json templates",
	Long: `Initialize a pwmeter working directory.

This command will:
1. Create a template .env file if it doesn't exist
2. Create a default settings.json if it doesn't exist`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			if err := os.WriteFile(".env", []byte(envTemplate), 0644); err != nil {
				return fmt.Errorf("error creating .env template: %w", err)
			}
			fmt.Fprintln(out, "✓ Created .env template file")
		} else {
			fmt.Fprintln(out, "• .env already exists, leaving it alone")
		}

		written, err := server.WriteDefaultSettings("settings.json")
		if err != nil {
			return err
		}
		if written {
			fmt.Fprintln(out, "✓ Created settings.json")
		} else {
			fmt.Fprintln(out, "• settings.json already exists, leaving it alone")
		}

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  pwmeter analyze            # prompt for a password")
		fmt.Fprintln(out, "  pwmeter serve --port 8080  # start the service")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
