package driven

import (
	"context"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// DocumentWriter persists the output document.
type DocumentWriter interface {
	// Write replaces the file at path with the encoded document
	// and returns the number of bytes written.
	Write(ctx context.Context, path string, doc *domain.Document) (int64, error)
}
