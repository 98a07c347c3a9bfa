package blobgen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squarcia/blobgen/distance"
)

func TestGenerate_Invariants(t *testing.T) {
	cfg := Config{Dimensions: 3, Centroids: 4, Samples: 500}
	ds := Generate(cfg, rand.New(rand.NewSource(1)))

	require.Equal(t, cfg.Samples, ds.Len())
	require.Equal(t, cfg.Samples, len(ds.Labels))
	require.Equal(t, cfg.Centroids, len(ds.Centroids))
	require.Equal(t, cfg.Dimensions, ds.Dim())

	for i, p := range ds.Points {
		require.Len(t, p, cfg.Dimensions)
		require.GreaterOrEqual(t, ds.Labels[i], 0)
		require.Less(t, ds.Labels[i], cfg.Centroids)
	}
	for _, c := range ds.Centroids {
		require.Len(t, c, cfg.Dimensions)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{Dimensions: 4, Centroids: 3, Samples: 200}

	a := Generate(cfg, rand.New(rand.NewSource(42)))
	b := Generate(cfg, rand.New(rand.NewSource(42)))

	require.Equal(t, a.Labels, b.Labels)
	require.Equal(t, a.Centroids, b.Centroids)
	require.Equal(t, a.Points, b.Points)

	c := Generate(cfg, rand.New(rand.NewSource(43)))
	require.NotEqual(t, a.Points, c.Points)
}

func TestGenerate_SingleCentroid(t *testing.T) {
	cfg := Config{Dimensions: 2, Centroids: 1, Samples: 100}
	ds := Generate(cfg, rand.New(rand.NewSource(7)))

	for _, label := range ds.Labels {
		require.Equal(t, 0, label)
	}

	// Every point sits within a few noise deviations of the single centroid.
	center := ds.Centroids[0]
	for _, p := range ds.Points {
		require.Less(t, distance.L2(p, center), 8.0)
	}
}

func TestGenerate_LabelsInterleaved(t *testing.T) {
	cfg := Config{Dimensions: 2, Centroids: 4, Samples: 1000}
	ds := Generate(cfg, rand.New(rand.NewSource(3)))

	// Output order must not group same-label samples contiguously. With
	// uniform i.i.d. labels, roughly 3/4 of adjacent pairs differ; assert a
	// generous lower bound.
	transitions := 0
	for i := 1; i < len(ds.Labels); i++ {
		if ds.Labels[i] != ds.Labels[i-1] {
			transitions++
		}
	}
	require.Greater(t, transitions, cfg.Samples/2)

	// And every cluster actually receives samples.
	seen := make(map[int]int)
	for _, label := range ds.Labels {
		seen[label]++
	}
	require.Len(t, seen, cfg.Centroids)
}

func TestGenerate_OneDimension(t *testing.T) {
	cfg := Config{Dimensions: 1, Centroids: 2, Samples: 50}
	ds := Generate(cfg, rand.New(rand.NewSource(9)))

	require.Equal(t, 1, ds.Dim())
	require.Equal(t, 50, ds.Len())
}

func TestGenerate_Options(t *testing.T) {
	cfg := Config{Dimensions: 2, Centroids: 2, Samples: 400}

	tight := Generate(cfg, rand.New(rand.NewSource(5)), func(o *GenerateOptions) {
		o.NoiseStdDev = 0.01
		o.CenterBox = [2]float64{-1, 1}
	})

	for _, c := range tight.Centroids {
		for _, v := range c {
			require.GreaterOrEqual(t, v, -1.0)
			require.Less(t, v, 1.0)
		}
	}
	for i, p := range tight.Points {
		require.Less(t, distance.L2(p, tight.Centroids[tight.Labels[i]]), 0.1)
	}
}

func TestDataset_Describe(t *testing.T) {
	cfg := Config{Dimensions: 3, Centroids: 2, Samples: 2000}
	ds := Generate(cfg, rand.New(rand.NewSource(11)))

	summaries := ds.Describe()
	require.Len(t, summaries, cfg.Dimensions)

	for j, s := range summaries {
		require.Equal(t, j, s.Dimension)
		// Centroids live in [-10, 10) with unit noise; the column mean and
		// spread have to stay in the same ballpark.
		require.Less(t, math.Abs(s.Mean), 10.0+3)
		require.Greater(t, s.StdDev, 0.0)
		require.Less(t, s.StdDev, 20.0)
	}
}
