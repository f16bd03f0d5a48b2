// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options and the immutable build configuration.
// Policy: option constructors panic on meaningless values; Build itself
//         never panics.

package builder

import "github.com/katalvlaran/collabnet/tracks"

// Deterministic defaults (named, no magic numbers).
const (
	// defaultWorkers keeps the build single-threaded unless asked otherwise.
	defaultWorkers = 1

	// maxReasonableWorkers caps fan-out; beyond this the merge cost dominates.
	maxReasonableWorkers = 256
)

// config aggregates all builder knobs. It is passed by value internally
// (immutable to callers once resolved).
type config struct {
	// delimiter separates artist names inside the raw field.
	delimiter string

	// workers is the number of independent partial accumulators.
	workers int
}

// Option configures graph construction.
type Option func(*config)

// WithDelimiter overrides the artist-field delimiter (default ";").
// Panics on an empty delimiter: there is no sane split on "".
func WithDelimiter(delimiter string) Option {
	if delimiter == "" {
		panic("builder: WithDelimiter requires a non-empty delimiter")
	}

	return func(c *config) { c.delimiter = delimiter }
}

// WithWorkers partitions records across n independent accumulators that are
// merged by summing weights. The result is identical for any n; this is a
// throughput knob only. Panics when n < 1 or n > 256.
func WithWorkers(n int) Option {
	if n < 1 || n > maxReasonableWorkers {
		panic("builder: WithWorkers requires 1 <= n <= 256")
	}

	return func(c *config) { c.workers = n }
}

// newConfig resolves options over deterministic defaults, last-wins.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		delimiter: tracks.DefaultDelimiter,
		workers:   defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
