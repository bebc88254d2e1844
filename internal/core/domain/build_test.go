package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResult_SizeMB(t *testing.T) {
	r := &BuildResult{Bytes: 3 * 1024 * 1024 / 2}
	assert.InDelta(t, 1.5, r.SizeMB(), 1e-12)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "sd_clip_embeddings_2d.pt", s.EmbeddingsPath)
	assert.Equal(t, "prompts.txt", s.PromptsPath)
	assert.Equal(t, "data.json", s.OutputPath)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, LogFormatText, s.LogFormat)
}

func TestLogFormat_IsValid(t *testing.T) {
	assert.True(t, LogFormatText.IsValid())
	assert.True(t, LogFormatJSON.IsValid())
	assert.False(t, LogFormat("xml").IsValid())
}

func TestIsValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		assert.True(t, IsValidLogLevel(level), level)
	}
	assert.False(t, IsValidLogLevel("trace"))
	assert.False(t, IsValidLogLevel(""))
}
