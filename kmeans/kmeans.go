package kmeans

import (
	"errors"
	"math"
	"math/rand"

	"github.com/squarcia/blobgen/distance"
)

// ErrTooFewPoints is returned when there are fewer points than clusters.
var ErrTooFewPoints = errors.New("fewer points than clusters")

// Options controls the training loop.
type Options struct {
	// MaxIterations caps the number of Lloyd iterations.
	MaxIterations int
	// ConvergenceThreshold stops training once the objective (summed
	// distance of every point to its closest centroid) changes by less than
	// this amount between iterations.
	ConvergenceThreshold float64
	// Metric selects the distance function.
	Metric distance.Metric
}

// DefaultOptions returns the default training parameters.
func DefaultOptions() Options {
	return Options{
		MaxIterations:        20,
		ConvergenceThreshold: 1e-4,
		Metric:               distance.MetricSquaredL2,
	}
}

// Result holds the trained clustering.
type Result struct {
	// Centroids are the k trained cluster centers.
	Centroids [][]float64
	// Assignments[i] is the centroid index closest to points[i].
	Assignments []int
	// Iterations is the number of Lloyd iterations executed.
	Iterations int
	// Converged reports whether training stopped on a convergence criterion
	// rather than on MaxIterations.
	Converged bool
	// Inertia is the final objective value.
	Inertia float64
}

// Train runs Lloyd's algorithm on points with k clusters, seeding the initial
// centroids from a random sample of k distinct points drawn via rng.
//
// Training stops when assignments are stable, when the objective changes by
// less than the convergence threshold, or after MaxIterations. Empty clusters
// are reseeded from a random point.
func Train(points [][]float64, k int, rng *rand.Rand, optFns ...func(*Options)) (*Result, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	n := len(points)
	if n < k {
		return nil, ErrTooFewPoints
	}
	dim := len(points[0])

	distFunc, err := distance.Provider(opts.Metric)
	if err != nil {
		return nil, err
	}

	// Initial centroids: a seeded random sample of k distinct points.
	centroids := make([][]float64, k)
	perm := rng.Perm(n)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), points[perm[i]]...)
	}

	assignments := make([]int, n)
	counts := make([]int, k)
	sums := make([]float64, k*dim)

	res := &Result{Centroids: centroids, Assignments: assignments}
	prevInertia := math.Inf(1)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		res.Iterations = iter + 1
		changed := false
		inertia := 0.0

		// Assignment step.
		for i, p := range points {
			best := -1
			minDist := math.Inf(1)
			for j, c := range centroids {
				if d := distFunc(p, c); d < minDist {
					minDist = d
					best = j
				}
			}
			inertia += minDist
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		res.Inertia = inertia

		if !changed || math.Abs(prevInertia-inertia) < opts.ConvergenceThreshold {
			res.Converged = true
			break
		}
		prevInertia = inertia

		// Update step.
		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}
		for i, p := range points {
			cluster := assignments[i]
			for d := 0; d < dim; d++ {
				sums[cluster*dim+d] += p[d]
			}
			counts[cluster]++
		}
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				scale := 1.0 / float64(counts[j])
				for d := 0; d < dim; d++ {
					centroids[j][d] = sums[j*dim+d] * scale
				}
			} else {
				// Reseed empty cluster with a random point.
				copy(centroids[j], points[rng.Intn(n)])
			}
		}
	}

	return res, nil
}

// Assign finds the closest centroid for a single point.
func Assign(p []float64, centroids [][]float64, metric distance.Metric) (int, error) {
	distFunc, err := distance.Provider(metric)
	if err != nil {
		return -1, err
	}

	best := -1
	minDist := math.Inf(1)
	for j, c := range centroids {
		if d := distFunc(p, c); d < minDist {
			minDist = d
			best = j
		}
	}
	return best, nil
}
