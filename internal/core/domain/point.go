package domain

import "math"

// Coordinate is a single 2D position.
type Coordinate struct {
	X float64
	Y float64
}

// PointCloud is an ordered sequence of coordinates.
// Points have no identity beyond their index.
type PointCloud []Coordinate

// Bounds returns the axis-aligned extent of the cloud.
// An empty cloud yields the zero box.
func (c PointCloud) Bounds() BoundingBox {
	if len(c) == 0 {
		return BoundingBox{}
	}
	minX, maxX := c[0].X, c[0].X
	minY, maxY := c[0].Y, c[0].Y
	for _, p := range c[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return BoundingBox{
		MinX: Number(minX),
		MaxX: Number(maxX),
		MinY: Number(minY),
		MaxY: Number(maxY),
	}
}

// Validate returns an *InvalidValueError for the first NaN or infinite value.
func (c PointCloud) Validate() error {
	for i, p := range c {
		if !isFinite(p.X) {
			return &InvalidValueError{Index: i, Axis: "x", Value: p.X}
		}
		if !isFinite(p.Y) {
			return &InvalidValueError{Index: i, Axis: "y", Value: p.Y}
		}
	}
	return nil
}

// Clone returns a copy of the cloud that shares no memory with c.
func (c PointCloud) Clone() PointCloud {
	if c == nil {
		return nil
	}
	out := make(PointCloud, len(c))
	copy(out, c)
	return out
}

// BoundingBox is the extent of a point cloud.
type BoundingBox struct {
	MinX Number `json:"minX"`
	MaxX Number `json:"maxX"`
	MinY Number `json:"minY"`
	MaxY Number `json:"maxY"`
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		X: midpoint(float64(b.MinX), float64(b.MaxX)),
		Y: midpoint(float64(b.MinY), float64(b.MaxY)),
	}
}

// midpoint returns (lo+hi)/2. Halves are summed only when the sum overflows;
// halving first loses the low bit of odd subnormals.
func midpoint(lo, hi float64) float64 {
	if m := (lo + hi) / 2; !math.IsInf(m, 0) {
		return m
	}
	return lo/2 + hi/2
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 {
	return float64(b.MaxX - b.MinX)
}

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 {
	return float64(b.MaxY - b.MinY)
}

// Point is one record of the output document.
// It is immutable once constructed.
type Point struct {
	// ID is the 0-based position of the point in the input.
	ID int `json:"id"`

	X Number `json:"x"`
	Y Number `json:"y"`

	// Prompt is the label aligned with the input coordinate.
	Prompt string `json:"prompt"`
}

// Document is the artifact consumed by the visualisation front end.
// Field names and nesting are fixed by the consumer.
type Document struct {
	Points []Point     `json:"points"`
	Bounds BoundingBox `json:"bounds"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
