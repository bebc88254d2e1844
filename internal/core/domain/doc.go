// Package domain defines the core entities for embedmap.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PointCloud: Ordered 2D coordinates loaded from an embedding file
//   - BoundingBox: Extent of a point cloud
//   - Point: One labelled, normalised record of the output document
//   - Document: The JSON artifact consumed by the visualisation front end
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
