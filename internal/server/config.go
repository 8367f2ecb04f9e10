package server

import (
	"os"
	"strings"
)

// Config holds server configuration
type Config struct {
	Port         string
	AppEnv       string // "development" adds error details to responses
	GinMode      string
	LogLevel     string
	LogFile      string
	SentryDSN    string
	SettingsPath string
	CORSOrigins  []string
}

// LoadConfig reads the configuration from the environment. Call
// godotenv.Load first to pick up a .env file.
func LoadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "production"),
		GinMode:      os.Getenv("GIN_MODE"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		SettingsPath: getEnv("SETTINGS_PATH", "settings.json"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

// IsDevelopment reports whether verbose error details are enabled
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
