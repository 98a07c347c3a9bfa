package blobgen

import (
	"fmt"
	"path"
)

// Config holds the three size parameters of one generation run.
// It is immutable for the lifetime of the run.
type Config struct {
	// Dimensions is the number of coordinates per point. Must be >= 1.
	Dimensions int
	// Centroids is the number of clusters. Must be >= 1.
	Centroids int
	// Samples is the number of points to generate. Must be >= 1.
	Samples int
}

// Validate checks that all size parameters are positive.
func (c Config) Validate() error {
	if c.Dimensions < 1 {
		return &ErrInvalidDimension{Dimensions: c.Dimensions}
	}
	if c.Centroids < 1 {
		return &ErrInvalidCentroidCount{Centroids: c.Centroids}
	}
	if c.Samples < 1 {
		return &ErrInvalidSampleCount{Samples: c.Samples}
	}
	return nil
}

// Key returns the naming key for this configuration.
func (c Config) Key() Key {
	return Key{Samples: c.Samples, Dimensions: c.Dimensions, Centroids: c.Centroids}
}

// DataDir and PlotDir are the conventional artifact directories, relative to
// the sink root.
const (
	DataDir = "txt"
	PlotDir = "plots"
)

// Key identifies one run's artifacts: (samples, dimensions, centroids).
// Downstream consumers (the visualizer in particular) derive all artifact
// names from it.
type Key struct {
	Samples    int
	Dimensions int
	Centroids  int
}

func (k Key) suffix() string {
	return fmt.Sprintf("%d_%d_%d", k.Samples, k.Dimensions, k.Centroids)
}

// DataName returns the corpus path, e.g. "txt/data_1000000_5_4.txt".
func (k Key) DataName() string {
	return path.Join(DataDir, "data_"+k.suffix()+".txt")
}

// ScatterMatrixName returns the scatter-matrix artifact path.
func (k Key) ScatterMatrixName() string {
	return path.Join(PlotDir, "scatter_matrix_"+k.suffix()+".png")
}

// ScatterPlotName returns the 2-D scatter-plot artifact path.
func (k Key) ScatterPlotName() string {
	return path.Join(PlotDir, "scatter_plot_"+k.suffix()+".png")
}
