// Package blobgen produces synthetic, labeled clustering benchmarks.
//
// A benchmark is a point cloud arranged around a configurable number of
// centroids in a configurable number of dimensions. Points are persisted to a
// deterministic comma-separated text corpus for downstream clustering
// evaluation (k-means and friends), and handed off read-only to an optional
// visualization step.
//
// # Quick Start
//
//	ctx := context.Background()
//	res, err := blobgen.Run(ctx,
//	    blobgen.Config{Dimensions: 5, Centroids: 4, Samples: 1_000_000},
//	    blobgen.WithSeed(42),
//	    blobgen.WithSink(sink.NewLocal("./out")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.DataPath) // txt/data_1000000_5_4.txt
//
// Two runs with the same Config and seed produce byte-identical corpora.
//
// # Generation
//
// Centroids are placed by drawing each coordinate uniformly from a center box
// (default [-10, 10)). Each sample picks a centroid uniformly at random and
// adds isotropic Gaussian noise (default standard deviation 1.0) per
// dimension. Because labels are drawn independently per sample, output order
// carries no cluster grouping.
//
// # Serialization
//
// One line per point, coordinates separated by single commas, each value
// rounded half-to-even to 4 decimal places and rendered in plain decimal
// notation. The text is idempotent: parsing and re-formatting a corpus
// reproduces it byte for byte.
//
// # Storage
//
// Corpora are written through the sink.Sink abstraction. Local filesystem and
// in-memory sinks ship in package sink; an S3-compatible sink lives in
// sink/minio.
package blobgen
