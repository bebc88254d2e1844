package services

import (
	"strconv"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// CoordinatePrecision is the number of decimal places kept in point records.
const CoordinatePrecision = 4

// Assemble pairs normalised coordinates with their labels by position.
// Counts must match; on mismatch no document is produced.
func Assemble(coords domain.PointCloud, bounds domain.BoundingBox, labels []string) (*domain.Document, error) {
	if len(coords) != len(labels) {
		return nil, &domain.LengthMismatchError{Coordinates: len(coords), Labels: len(labels)}
	}

	points := make([]domain.Point, len(coords))
	for i, c := range coords {
		points[i] = domain.Point{
			ID:     i,
			X:      domain.Number(Round(c.X, CoordinatePrecision)),
			Y:      domain.Number(Round(c.Y, CoordinatePrecision)),
			Prompt: labels[i],
		}
	}

	return &domain.Document{
		Points: points,
		Bounds: bounds,
	}, nil
}

// Round rounds v to the given number of decimal places.
//
// The exact binary value of v is rounded, with exact ties going to the even
// digit. 2.675 is stored as 2.67499999... and so rounds to 2.67 at two places,
// while 0.125 is an exact tie and rounds to 0.12.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
