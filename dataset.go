package blobgen

import (
	"gonum.org/v1/gonum/stat"
)

// Dataset is the output of one generation run: samples in generation order,
// their cluster labels, and the centroids they were sampled around.
//
// A Dataset is read-only after generation. Points share a single backing
// array; callers must not mutate the slices.
type Dataset struct {
	// Points holds one coordinate vector per sample.
	Points [][]float64
	// Labels[i] is the centroid index Points[i] was generated from.
	Labels []int
	// Centroids holds one coordinate vector per cluster index.
	Centroids [][]float64
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Points) }

// Dim returns the number of coordinates per point.
func (d *Dataset) Dim() int {
	if len(d.Points) == 0 {
		return 0
	}
	return len(d.Points[0])
}

// DimensionSummary describes the spread of one coordinate dimension.
type DimensionSummary struct {
	Dimension int
	Mean      float64
	StdDev    float64
}

// Describe computes per-dimension mean and standard deviation across all
// points. Useful as a quick sanity signal that the blobs cover the intended
// range.
func (d *Dataset) Describe() []DimensionSummary {
	dim := d.Dim()
	summaries := make([]DimensionSummary, dim)
	col := make([]float64, d.Len())

	for j := 0; j < dim; j++ {
		for i, p := range d.Points {
			col[i] = p[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		summaries[j] = DimensionSummary{Dimension: j, Mean: mean, StdDev: std}
	}
	return summaries
}
