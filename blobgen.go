package blobgen

import (
	"context"
	"math/rand"
	"time"
)

// Renderer is the visualization collaborator. Implementations render diagnostic
// images from the read-only Dataset and name them from the Key (see
// Key.ScatterMatrixName and Key.ScatterPlotName). Rendering requires at
// least 2 dimensions; Run never invokes a Renderer below that.
type Renderer interface {
	// RenderScatterMatrix renders the all-pairs scatter matrix and returns
	// the artifact path.
	RenderScatterMatrix(ctx context.Context, ds *Dataset, key Key) (string, error)
	// RenderScatterPlot renders the 2-D scatter plot of the first two
	// dimensions, colored by label, and returns the artifact path.
	RenderScatterPlot(ctx context.Context, ds *Dataset, key Key) (string, error)
}

// Result holds the artifacts of one run.
type Result struct {
	// DataPath is the corpus name within the sink, e.g. "txt/data_5_2_2.txt".
	DataPath string
	// PlotPaths lists rendered plot artifacts, in scatter-matrix,
	// scatter-plot order. Empty when no renderer is attached or the run has
	// fewer than 2 dimensions.
	PlotPaths []string
	// Dataset is the generated data, read-only.
	Dataset *Dataset
}

// Run executes the full pipeline: validate cfg, generate blobs, write the
// corpus through the sink, and hand the Dataset to the renderer if one is
// attached.
//
// Configuration errors are returned before any generation starts. Sink
// failures are fatal and not retried; a partially written corpus may remain.
func Run(ctx context.Context, cfg Config, optFns ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	logger := o.logger.WithConfig(cfg)

	rng := o.rng
	if rng == nil {
		// Non-reproducible by default; inject WithSeed for determinism.
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ds := Generate(cfg, rng, o.genOpts...)
	logger.LogGenerate(ctx, ds)

	key := cfg.Key()
	dataPath, err := WriteDataset(ctx, o.sink, key, ds)
	logger.LogSerialize(ctx, key.DataName(), ds.Len(), err)
	if err != nil {
		return nil, err
	}

	res := &Result{DataPath: dataPath, Dataset: ds}

	if o.renderer != nil {
		if cfg.Dimensions < 2 {
			logger.WarnContext(ctx, "skipping plots: rendering requires at least 2 dimensions")
			return res, nil
		}

		matrixPath, err := o.renderer.RenderScatterMatrix(ctx, ds, key)
		logger.LogRender(ctx, key.ScatterMatrixName(), err)
		if err != nil {
			return nil, err
		}

		plotPath, err := o.renderer.RenderScatterPlot(ctx, ds, key)
		logger.LogRender(ctx, key.ScatterPlotName(), err)
		if err != nil {
			return nil, err
		}

		res.PlotPaths = []string{matrixPath, plotPath}
	}

	return res, nil
}
