package tensor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driven"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CoordinateLoader = (*Loader)(nil)

// Format identifies an embedding file format.
type Format string

const (
	FormatPyTorch     Format = "pytorch"
	FormatSafetensors Format = "safetensors"
	FormatNumPy       Format = "npy"
)

var extensions = map[string]Format{
	".pt":          FormatPyTorch,
	".pth":         FormatPyTorch,
	".safetensors": FormatSafetensors,
	".npy":         FormatNumPy,
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: embedding file extension %q (supported: %s)",
			domain.ErrUnsupportedType, ext, strings.Join(Extensions(), ", "))
	}
	return format, nil
}

// Extensions lists the supported file extensions in a stable order.
func Extensions() []string {
	return []string{".npy", ".pt", ".pth", ".safetensors"}
}

// Loader reads coordinate files from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader backed by fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads the N×2 array stored at path.
func (l *Loader) Load(ctx context.Context, path string) (domain.PointCloud, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("embedding file not found: %s: %w", path, domain.ErrNotFound)
	}

	logger.Debug("Decoding embeddings", "path", path, "format", format)

	switch format {
	case FormatPyTorch:
		return l.loadPyTorch(path)
	case FormatSafetensors:
		return l.loadSafetensors(path)
	default:
		return l.loadNumPy(path)
	}
}

// toCloud converts a row-major [N, 2] buffer into a point cloud.
func toCloud[T float32 | float64](data []T, shape []int) (domain.PointCloud, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	n := shape[0]
	if len(data) < n*2 {
		return nil, fmt.Errorf("tensor data holds %d values, shape %v needs %d", len(data), shape, n*2)
	}

	cloud := make(domain.PointCloud, n)
	for i := range cloud {
		cloud[i] = domain.Coordinate{X: float64(data[2*i]), Y: float64(data[2*i+1])}
	}
	return cloud, nil
}

func checkShape(shape []int) error {
	if len(shape) != 2 || shape[1] != 2 || shape[0] < 0 {
		return &domain.ShapeError{Shape: append([]int(nil), shape...)}
	}
	return nil
}
