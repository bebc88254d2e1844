package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driven"
	"github.com/custodia-labs/embedmap/internal/core/ports/driving"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// Ensure MapBuilder implements the interface.
var _ driving.MapBuilder = (*MapBuilder)(nil)

// MapBuilder runs the load, normalise, assemble and write pipeline.
type MapBuilder struct {
	coords   driven.CoordinateLoader
	prompts  driven.PromptLoader
	writer   driven.DocumentWriter
	validate *validator.Validate
	now      func() time.Time
}

// NewMapBuilder creates a new map builder.
func NewMapBuilder(
	coords driven.CoordinateLoader,
	prompts driven.PromptLoader,
	writer driven.DocumentWriter,
) *MapBuilder {
	return &MapBuilder{
		coords:   coords,
		prompts:  prompts,
		writer:   writer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Build loads both inputs, composes the document and writes it.
// Any failure aborts the run before the output file is replaced.
func (b *MapBuilder) Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	if err := b.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	runID := uuid.NewString()
	start := b.now()

	logger.Section("Loading embeddings")
	logger.Info("Loading embeddings", "run", runID, "path", req.EmbeddingsPath)
	cloud, err := b.coords.Load(ctx, req.EmbeddingsPath)
	if err != nil {
		return nil, fmt.Errorf("loading embeddings: %w", err)
	}
	logger.Info("Loaded embeddings", "run", runID, "count", len(cloud), "shape", fmt.Sprintf("[%d 2]", len(cloud)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Loading prompts")
	logger.Info("Loading prompts", "run", runID, "path", req.PromptsPath)
	labels, err := b.prompts.Load(ctx, req.PromptsPath)
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}
	logger.Info("Loaded prompts", "run", runID, "count", len(labels))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Creating document")
	logger.Info("Processing points", "run", runID, "count", len(cloud))
	doc, err := b.Compose(cloud, labels)
	if err != nil {
		return nil, err
	}

	logger.Info("Writing document", "run", runID, "path", req.OutputPath)
	n, err := b.writer.Write(ctx, req.OutputPath, doc)
	if err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	result := &domain.BuildResult{
		RunID:      runID,
		Points:     len(doc.Points),
		Bounds:     doc.Bounds,
		OutputPath: req.OutputPath,
		Bytes:      n,
		Duration:   b.now().Sub(start),
	}
	logger.Debug("Build complete", "run", runID, "bytes", n, "duration", result.Duration)

	return result, nil
}

// Compose checks the length invariant, normalises the cloud and assembles the document.
func (b *MapBuilder) Compose(cloud domain.PointCloud, labels []string) (*domain.Document, error) {
	if len(cloud) != len(labels) {
		return nil, &domain.LengthMismatchError{Coordinates: len(cloud), Labels: len(labels)}
	}

	normalized, bounds, err := Normalize(cloud)
	if err != nil {
		return nil, fmt.Errorf("normalizing coordinates: %w", err)
	}

	return Assemble(normalized, bounds, labels)
}
