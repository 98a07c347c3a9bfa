// Package kmeans implements Lloyd's algorithm for evaluating generated
// benchmarks: train k centroids on a corpus and compare the recovered
// clustering against the generation labels.
package kmeans
