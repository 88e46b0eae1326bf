package ember

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Reproducible simulation for tests or replays
//	e := ember.NewEngine(ember.WithSeed(42))
//
//	// Screen coordinates with Y growing downward
//	e := ember.NewEngine(ember.WithYFlip())
type Option func(*engineOptions)

type engineOptions struct {
	rng      *rand.Rand
	yFlip    float64
	logger   *slog.Logger
	capacity int
}

func defaultOptions() engineOptions {
	return engineOptions{
		yFlip: 1,
	}
}

// WithSeed makes the engine's generator deterministic.
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.rng = rand.New(rand.NewPCG(seed, seed^pcgStream))
	}
}

// WithRand injects the generator used for birth sampling. The engine
// takes ownership of r; it must not be shared with another engine.
func WithRand(r *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = r
	}
}

// WithYFlip negates the vertical component of particle motion. Use it when
// the renderer's Y axis points the opposite way to the one the effect was
// authored for. The flip is fixed for the engine's lifetime.
func WithYFlip() Option {
	return func(o *engineOptions) {
		o.yFlip = -1
	}
}

// WithLogger overrides the package logger for one engine.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithCapacity sizes the pool at construction, equivalent to calling Init.
// NewEngine cannot return the error for n > MaxCapacity; callers must check
// Capacity afterwards.
func WithCapacity(n int) Option {
	return func(o *engineOptions) {
		o.capacity = n
	}
}
