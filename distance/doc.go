// Package distance provides the vector distance calculations used by the
// k-means evaluator and the generation tests.
package distance
