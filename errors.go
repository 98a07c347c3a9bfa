package blobgen

import (
	"fmt"
)

// ErrInvalidDimension indicates a non-positive dimension count.
type ErrInvalidDimension struct {
	Dimensions int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimensions: %d (must be >= 1)", e.Dimensions)
}

// ErrInvalidCentroidCount indicates a non-positive centroid count.
type ErrInvalidCentroidCount struct {
	Centroids int
}

func (e *ErrInvalidCentroidCount) Error() string {
	return fmt.Sprintf("invalid centroid count: %d (must be >= 1)", e.Centroids)
}

// ErrInvalidSampleCount indicates a non-positive sample count.
//
// A zero sample count is rejected rather than producing an empty corpus.
type ErrInvalidSampleCount struct {
	Samples int
}

func (e *ErrInvalidSampleCount) Error() string {
	return fmt.Sprintf("invalid sample count: %d (must be >= 1)", e.Samples)
}
