package blobgen

import (
	"log/slog"
	"math/rand"

	"github.com/squarcia/blobgen/sink"
)

type options struct {
	rng      *rand.Rand
	sink     sink.Sink
	renderer Renderer
	logger   *Logger
	genOpts  []func(*GenerateOptions)
}

// Option configures a Run.
type Option func(*options)

// WithRand injects the random source used for centroid placement, label
// assignment and noise. Two runs with the same source seed and Config produce
// byte-identical corpora.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSink configures where the corpus is written.
//
// If unset, a local sink rooted at the current directory is used.
func WithSink(s sink.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithRenderer attaches a visualization collaborator. The renderer receives
// the read-only Dataset plus the naming Key after the corpus is written.
// It is only invoked for runs with at least 2 dimensions.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithGenerateOptions tweaks blob shape (noise spread, centroid box).
//
// Example:
//
//	blobgen.WithGenerateOptions(func(o *blobgen.GenerateOptions) {
//	    o.NoiseStdDev = 2.5
//	})
func WithGenerateOptions(optFns ...func(*GenerateOptions)) Option {
	return func(o *options) {
		o.genOpts = append(o.genOpts, optFns...)
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		sink:   sink.NewLocal("."),
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
