package driving

import (
	"context"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// MapBuilder produces embedding map documents.
type MapBuilder interface {
	// Build loads the inputs named by req, normalises them and writes the document.
	Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error)

	// Compose normalises an in-memory cloud and pairs it with labels.
	Compose(cloud domain.PointCloud, labels []string) (*domain.Document, error)
}
