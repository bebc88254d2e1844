package driven

import (
	"context"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// CoordinateLoader reads 2D coordinates from an embedding file.
type CoordinateLoader interface {
	// Load returns the coordinates stored at path.
	// Arrays that are not N×2 fail with a *domain.ShapeError.
	// A missing file wraps domain.ErrNotFound.
	Load(ctx context.Context, path string) (domain.PointCloud, error)
}

// PromptLoader reads one label per line from a text file.
type PromptLoader interface {
	// Load returns the trimmed lines stored at path.
	// A missing file wraps domain.ErrNotFound.
	Load(ctx context.Context, path string) ([]string, error)
}
