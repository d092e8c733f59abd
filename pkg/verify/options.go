package verify

import (
	"log/slog"

	"github.com/aretw0/densca/pkg/observability"
)

// DefaultChunkSize is the number of consecutive candidates handed to a worker at once.
const DefaultChunkSize = 4096

// Option defines a functional option for configuring the Verifier.
type Option func(*Verifier)

// WithWorkers bounds the number of concurrent workers. Values below 1 select runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(v *Verifier) {
		v.workers = n
	}
}

// WithChunkSize sets how many candidates a worker evaluates per unit of work.
func WithChunkSize(n int) Option {
	return func(v *Verifier) {
		v.chunkSize = n
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// WithMetrics records search progress on the given collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(v *Verifier) {
		v.metrics = m
	}
}

// WithProgress reports search progress to p.
func WithProgress(p Progress) Option {
	return func(v *Verifier) {
		v.progress = p
	}
}

// WithOracle replaces the correctness oracle. Used to test the search itself.
// A nil oracle keeps DefaultOracle.
func WithOracle(o Oracle) Option {
	return func(v *Verifier) {
		v.oracle = o
	}
}

// WithFullRange enumerates every initial value instead of relying on complement
// symmetry to skip the values whose top bit is set.
func WithFullRange(full bool) Option {
	return func(v *Verifier) {
		v.fullRange = full
	}
}
