package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/neo/pwmeter/internal/analyzer"
)

// ErrInvalidSettings is returned for settings that fail validation
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the runtime switches of the analysis service
type Settings struct {
	// Stream and batch endpoints
	EnableStream bool `json:"enable_stream"`
	EnableBatch  bool `json:"enable_batch"`

	// Input ceilings, 0 disables
	MaxPasswordLength int `json:"max_password_length"`
	MaxBatchSize      int `json:"max_batch_size"`
}

// DefaultSettings returns the settings used when no file is present
func DefaultSettings() Settings {
	return Settings{
		EnableStream:      true,
		EnableBatch:       true,
		MaxPasswordLength: analyzer.DefaultMaxLength,
		MaxBatchSize:      100,
	}
}

// Validate checks the settings for impossible values
func (s Settings) Validate() error {
	if s.MaxPasswordLength < 0 {
		return fmt.Errorf("%w: max_password_length must not be negative", ErrInvalidSettings)
	}
	if s.MaxBatchSize < 0 {
		return fmt.Errorf("%w: max_batch_size must not be negative", ErrInvalidSettings)
	}
	return nil
}

// SettingsManager holds the settings loaded from a JSON file
type SettingsManager struct {
	settings   Settings
	configPath string
	mu         sync.RWMutex
}

// NewSettingsManager loads settings from configPath. A missing file (or an
// empty path) yields the defaults; the file is never written.
func NewSettingsManager(configPath string) (*SettingsManager, error) {
	manager := &SettingsManager{
		configPath: configPath,
		settings:   DefaultSettings(),
	}

	if configPath == "" {
		return manager, nil
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := manager.Reload(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

// Get returns the current settings
func (m *SettingsManager) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Reload re-reads the settings file. Fields absent from the file keep their defaults.
func (m *SettingsManager) Reload() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	m.settings = settings
	m.mu.Unlock()
	return nil
}

// WriteDefaultSettings writes a settings template unless the file exists
func WriteDefaultSettings(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := json.MarshalIndent(DefaultSettings(), "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write settings file: %w", err)
	}
	return true, nil
}
