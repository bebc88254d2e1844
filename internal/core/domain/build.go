package domain

import "time"

// BuildRequest names the inputs and output of one build.
type BuildRequest struct {
	// EmbeddingsPath is the N×2 coordinate file.
	EmbeddingsPath string `validate:"required"`

	// PromptsPath is the newline-delimited label file.
	PromptsPath string `validate:"required"`

	// OutputPath is where the JSON document is written.
	OutputPath string `validate:"required"`
}

// BuildResult summarises a completed build.
type BuildResult struct {
	// RunID identifies the build in logs.
	RunID string

	// Points is the number of records written.
	Points int

	Bounds BoundingBox

	OutputPath string

	// Bytes is the size of the written document.
	Bytes int64

	Duration time.Duration
}

// SizeMB returns the document size in mebibytes.
func (r *BuildResult) SizeMB() float64 {
	return float64(r.Bytes) / (1024 * 1024)
}
