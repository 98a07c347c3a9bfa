package blobgen

import (
	"math/rand"
)

// GenerateOptions controls blob shape. The defaults match the common
// make_blobs benchmark setup: centroids in [-10, 10) with unit noise.
type GenerateOptions struct {
	// NoiseStdDev is the standard deviation of the isotropic Gaussian noise
	// added per dimension around the assigned centroid.
	NoiseStdDev float64
	// CenterBox bounds the uniform draw of centroid coordinates,
	// [CenterBox[0], CenterBox[1]).
	CenterBox [2]float64
}

// DefaultGenerateOptions returns the default blob shape.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		NoiseStdDev: 1.0,
		CenterBox:   [2]float64{-10, 10},
	}
}

// Generate produces a Dataset for cfg using rng as the only source of
// randomness. It is a pure function of (cfg, rng, options): the same seed and
// configuration yield an identical Dataset.
//
// Each sample is assigned a centroid uniformly at random, so samples from
// different clusters interleave in the output order; no separate shuffle is
// needed or performed.
//
// cfg must have been validated; Generate does not fail on a valid Config.
func Generate(cfg Config, rng *rand.Rand, optFns ...func(*GenerateOptions)) *Dataset {
	opts := DefaultGenerateOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	centroids := placeCentroids(cfg, rng, opts)

	// Single backing array for all points (cheap to allocate, cache friendly).
	flat := make([]float64, cfg.Samples*cfg.Dimensions)
	points := make([][]float64, cfg.Samples)
	labels := make([]int, cfg.Samples)

	for i := 0; i < cfg.Samples; i++ {
		label := rng.Intn(cfg.Centroids)
		labels[i] = label

		center := centroids[label]
		p := flat[i*cfg.Dimensions : (i+1)*cfg.Dimensions]
		for j := range p {
			p[j] = center[j] + rng.NormFloat64()*opts.NoiseStdDev
		}
		points[i] = p
	}

	return &Dataset{Points: points, Labels: labels, Centroids: centroids}
}

// placeCentroids draws each centroid coordinate independently from the
// uniform center box, keeping centroids well separated in expectation.
func placeCentroids(cfg Config, rng *rand.Rand, opts GenerateOptions) [][]float64 {
	lo, hi := opts.CenterBox[0], opts.CenterBox[1]
	span := hi - lo

	flat := make([]float64, cfg.Centroids*cfg.Dimensions)
	centroids := make([][]float64, cfg.Centroids)

	for i := 0; i < cfg.Centroids; i++ {
		c := flat[i*cfg.Dimensions : (i+1)*cfg.Dimensions]
		for j := range c {
			c[j] = lo + rng.Float64()*span
		}
		centroids[i] = c
	}
	return centroids
}
