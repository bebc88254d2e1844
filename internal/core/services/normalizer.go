package services

import (
	"math"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// DisplayRange is the half-width of the square that normalised coordinates fit into.
const DisplayRange = 100.0

// Normalize centres the bounding box of cloud on the origin and scales both
// axes by the same factor so that the largest absolute coordinate becomes
// DisplayRange. It returns a new cloud and the bounds of the transformed data.
//
// A cloud whose points all coincide is translated to the origin and not scaled.
// The input is never modified.
func Normalize(cloud domain.PointCloud) (domain.PointCloud, domain.BoundingBox, error) {
	if len(cloud) == 0 {
		return nil, domain.BoundingBox{}, domain.ErrEmptyInput
	}
	if err := cloud.Validate(); err != nil {
		return nil, domain.BoundingBox{}, err
	}

	center := cloud.Bounds().Center()

	out := make(domain.PointCloud, len(cloud))
	var maxRange float64
	for i, p := range cloud {
		x := p.X - center.X
		y := p.Y - center.Y
		out[i] = domain.Coordinate{X: x, Y: y}
		maxRange = math.Max(maxRange, math.Max(math.Abs(x), math.Abs(y)))
	}

	// Dividing first keeps every ratio within [-1, 1]; DisplayRange/maxRange
	// overflows for subnormal ranges.
	if maxRange > 0 {
		for i := range out {
			out[i].X = out[i].X / maxRange * DisplayRange
			out[i].Y = out[i].Y / maxRange * DisplayRange
		}
	}

	return out, out.Bounds(), nil
}
