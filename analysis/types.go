// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options (functional, resolved once), the Result value object and
//       sentinel errors.
// Policy: option constructors panic on meaningless values; Analyze never
//         panics.

package analysis

import (
	"errors"

	"github.com/katalvlaran/collabnet/core"
)

// Sentinel errors returned by the analysis pipeline.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Analyze or Layout.
	ErrNilGraph = errors.New("analysis: graph is nil")

	// ErrEigenFailed indicates the symmetric eigendecomposition backing
	// eigenvector centrality did not converge.
	ErrEigenFailed = errors.New("analysis: eigendecomposition failed")
)

// Defaults for the analysis options (named, no magic numbers).
const (
	// DefaultSampleThreshold is the node count above which betweenness
	// switches to sampled estimation.
	DefaultSampleThreshold = 2000

	// DefaultSampleCap bounds the sampled node subset.
	DefaultSampleCap = 500

	// DefaultSeed feeds every stochastic delegate (Louvain, sampling, layout).
	DefaultSeed = 1

	// DefaultResolution is the Louvain resolution parameter.
	DefaultResolution = 1.0

	// DefaultLayoutUpdates is the number of force-directed iterations.
	DefaultLayoutUpdates = 100
)

// options aggregates all analysis knobs; resolved once per call.
type options struct {
	sampleThreshold int
	sampleCap       int
	seed            uint64
	resolution      float64
	layoutUpdates   int
}

// Option configures the analysis pipeline.
type Option func(*options)

// WithSampleThreshold sets the node count above which betweenness is
// estimated on a sample. Panics when n < 1.
func WithSampleThreshold(n int) Option {
	if n < 1 {
		panic("analysis: WithSampleThreshold requires n >= 1")
	}

	return func(o *options) { o.sampleThreshold = n }
}

// WithSampleCap bounds the sampled subset size. Panics when n < 2 — a
// betweenness estimate over fewer than two nodes is meaningless.
func WithSampleCap(n int) Option {
	if n < 2 {
		panic("analysis: WithSampleCap requires n >= 2")
	}

	return func(o *options) { o.sampleCap = n }
}

// WithSeed fixes the seed of every stochastic delegate, making the whole
// Result reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithResolution sets the Louvain resolution parameter (1.0 is the classic
// modularity objective). Panics when resolution <= 0.
func WithResolution(resolution float64) Option {
	if resolution <= 0 {
		panic("analysis: WithResolution requires resolution > 0")
	}

	return func(o *options) { o.resolution = resolution }
}

// WithLayoutUpdates sets the number of force-directed iterations used by
// Layout. Panics when n < 1.
func WithLayoutUpdates(n int) Option {
	if n < 1 {
		panic("analysis: WithLayoutUpdates requires n >= 1")
	}

	return func(o *options) { o.layoutUpdates = n }
}

// newOptions resolves options over deterministic defaults, last-wins.
// Complexity: O(len(opts)).
func newOptions(opts ...Option) options {
	o := options{
		sampleThreshold: DefaultSampleThreshold,
		sampleCap:       DefaultSampleCap,
		seed:            DefaultSeed,
		resolution:      DefaultResolution,
		layoutUpdates:   DefaultLayoutUpdates,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// BetweennessResult carries betweenness scores plus their provenance:
// exact (whole graph) or a sample-based estimate.
type BetweennessResult struct {
	// Scores maps artist name to normalized betweenness in [0,1]. When
	// Sampled is true, only sampled nodes are present.
	Scores map[string]float64

	// Sampled reports that Scores is an estimate over a node sample.
	Sampled bool

	// SampleSize is the number of nodes the estimate was computed on
	// (equals the full node count when Sampled is false).
	SampleSize int
}

// Community is one detected cluster of artists.
type Community struct {
	// ID is the community's rank: 0 is the largest community.
	ID int

	// Members holds the community's artist names, sorted ascending.
	Members []string
}

// Size returns the member count.
func (c Community) Size() int { return len(c.Members) }

// ComponentStats summarizes the connected-component structure.
type ComponentStats struct {
	// Count is the number of connected components.
	Count int

	// LargestSize is the node count of the largest component.
	LargestSize int
}

// CorrelationMatrix is the Pearson correlation among centrality measures,
// aligned on the node set every measure scored.
type CorrelationMatrix struct {
	// Measures names the rows/columns, in order.
	Measures []string

	// Values[i][j] is the correlation between Measures[i] and Measures[j].
	Values [][]float64
}

// XY is a 2D layout coordinate.
type XY struct {
	X float64
	Y float64
}

// Result is the complete analytics product of one Analyze call. Reporting
// steps receive it explicitly; there is no ambient shared state.
type Result struct {
	// Summary is the scalar graph snapshot (counts, average degree, density).
	Summary core.GraphStats

	// Degree maps artist name to distinct-neighbor count.
	Degree map[string]int

	// Betweenness holds normalized betweenness scores and their provenance.
	Betweenness BetweennessResult

	// Eigenvector maps artist name to eigenvector centrality scaled to [0,1].
	Eigenvector map[string]float64

	// Communities holds the Louvain partition, largest community first.
	Communities []Community

	// Modularity is the partition's modularity score.
	Modularity float64

	// Components summarizes connectivity.
	Components ComponentStats

	// Correlation relates the centrality measures; nil on graphs too small
	// to correlate (fewer than two scored nodes).
	Correlation *CorrelationMatrix
}
