package services

import (
	"fmt"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driven"
	"github.com/custodia-labs/embedmap/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyEmbeddingsPath = "paths.embeddings"
	KeyPromptsPath    = "paths.prompts"
	KeyOutputPath     = "paths.output"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		EmbeddingsPath: s.getString(KeyEmbeddingsPath, defaults.EmbeddingsPath),
		PromptsPath:    s.getString(KeyPromptsPath, defaults.PromptsPath),
		OutputPath:     s.getString(KeyOutputPath, defaults.OutputPath),
		LogLevel:       defaults.LogLevel,
		LogFormat:      defaults.LogFormat,
	}

	if level := s.configStore.GetString(KeyLogLevel); domain.IsValidLogLevel(level) {
		settings.LogLevel = level
	}
	if format := domain.LogFormat(s.configStore.GetString(KeyLogFormat)); format.IsValid() {
		settings.LogFormat = format
	}

	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyEmbeddingsPath, KeyPromptsPath, KeyOutputPath:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
	case KeyLogLevel:
		if !domain.IsValidLogLevel(value) {
			return fmt.Errorf("%w: log level must be one of debug, info, warn, error", domain.ErrInvalidInput)
		}
	case KeyLogFormat:
		if !domain.LogFormat(value).IsValid() {
			return fmt.Errorf("%w: log format must be text or json", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, value)
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyEmbeddingsPath, KeyPromptsPath, KeyOutputPath, KeyLogLevel, KeyLogFormat}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}
