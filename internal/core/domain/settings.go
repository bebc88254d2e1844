package domain

// LogFormat selects the log encoding.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// IsValid returns true if the format is recognised.
func (f LogFormat) IsValid() bool {
	return f == LogFormatText || f == LogFormatJSON
}

// Settings holds the persisted defaults for builds.
type Settings struct {
	// EmbeddingsPath is the default coordinate file.
	EmbeddingsPath string

	// PromptsPath is the default label file.
	PromptsPath string

	// OutputPath is the default document path.
	OutputPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	LogFormat LogFormat
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		EmbeddingsPath: "sd_clip_embeddings_2d.pt",
		PromptsPath:    "prompts.txt",
		OutputPath:     "data.json",
		LogLevel:       "info",
		LogFormat:      LogFormatText,
	}
}

// IsValidLogLevel returns true for debug, info, warn and error.
func IsValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
