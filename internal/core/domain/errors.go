package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested input file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown file format or tensor type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Pipeline Errors.

	// ErrEmptyInput indicates a point cloud with zero rows.
	// Extrema of an empty set are undefined, so normalisation cannot proceed.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch indicates the coordinate and label counts differ.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrShape indicates a loaded array is not N×2.
	ErrShape = errors.New("shape error")
)

// LengthMismatchError reports differing coordinate and label counts.
type LengthMismatchError struct {
	Coordinates int
	Labels      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d coordinates but %d labels", e.Coordinates, e.Labels)
}

// Unwrap returns ErrLengthMismatch.
func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

// ShapeError reports a loaded array whose shape is not [N, 2].
type ShapeError struct {
	Shape []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: expected an N×2 array, got shape %v", e.Shape)
}

// Unwrap returns ErrShape.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// InvalidValueError reports a non-finite coordinate.
type InvalidValueError struct {
	// Index is the row of the offending coordinate.
	Index int

	// Axis is "x" or "y".
	Axis string

	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid input: non-finite %s coordinate at index %d: %v", e.Axis, e.Index, e.Value)
}

// Unwrap returns ErrInvalidInput.
func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidInput
}
