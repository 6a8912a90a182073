// SPDX-License-Identifier: MIT
// File: builder.go
// Role: NewMultiplex — validation, concurrent per-layer simplification,
//       pool aggregation, padding, tagging, and final assembly.
// Determinism:
//   - Simplification results are recombined by layer position, not by
//     completion order; padding and tagging run strictly after the join
//     barrier. Output is independent of scheduling.

package multiplex

import (
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/multinet/core"
)

// defaultLayerPrefix composes default names "Layer_1", "Layer_2", ...
const defaultLayerPrefix = "Layer_"

// Option configures multiplex assembly.
type Option func(*buildOptions)

// buildOptions holds resolved assembly configuration.
type buildOptions struct {
	workers int // max concurrent simplification workers
}

// WithWorkers bounds the number of concurrent simplification workers.
// Panics if n < 1 (programmer error; options are validated at construction).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("multiplex: WithWorkers requires n >= 1")
	}

	return func(o *buildOptions) { o.workers = n }
}

// NewMultiplex builds an aligned multiplex network from an ordered list of
// layers.
//
// Stages, in dependency order:
//  1. Validate: at least one layer (ErrNoLayers), no nil graphs
//     (ErrNilLayer), unique names after defaulting (ErrDuplicateLayerName).
//  2. Default empty layer names to "Layer_<k>" (k = 1-based position).
//  3. Simplify every layer concurrently (self-loops dropped, parallel edges
//     collapsed); inputs are copied, never mutated. The stage joins fully
//     before padding begins.
//  4. Aggregate the pool: sorted distinct union of all vertex IDs.
//  5. Pad each simplified layer with isolated vertices for every pool node
//     it lacks, so all vertex sets equal the pool exactly.
//  6. Tag every edge of each layer with the layer's name.
//  7. Assemble the immutable Multiplex.
//
// A single-layer input (monoplex) follows the identical path and yields
// LayerCount() == 1 with no structural divergence.
// Complexity: O(Σ(V_i+E_i) + L·N) time, O(L·N + Σ E_i) space.
func NewMultiplex(layers []Layer, opts ...Option) (*Multiplex, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("NewMultiplex: %w", ErrNoLayers)
	}

	cfg := buildOptions{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1+2: validate inputs and resolve names before any heavy work.
	names := make([]string, len(layers))
	used := make(map[string]struct{}, len(layers))
	for k, l := range layers {
		if l.Graph == nil {
			return nil, fmt.Errorf("NewMultiplex: layer %d (%q): %w", k, l.Name, ErrNilLayer)
		}
		name := l.Name
		if name == "" {
			name = defaultLayerPrefix + strconv.Itoa(k+1)
		}
		if _, dup := used[name]; dup {
			return nil, fmt.Errorf("NewMultiplex: layer %d: name %q: %w", k, name, ErrDuplicateLayerName)
		}
		used[name] = struct{}{}
		names[k] = name
	}

	// Stage 3: simplify layers concurrently. Each worker reads exactly one
	// input graph and writes exactly one slot of simplified, so there is no
	// shared mutable state. Wait() is the join barrier: padding must not
	// observe a partially simplified layer set.
	simplified := make([]*core.Graph, len(layers))
	var eg errgroup.Group
	eg.SetLimit(cfg.workers)
	for k := range layers {
		k := k
		eg.Go(func() error {
			simplified[k] = layers[k].Graph.Simplify()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		// No worker fails today (Simplify is total), but a failure here must
		// abort the whole assembly rather than salvage a partial multiplex.
		return nil, fmt.Errorf("NewMultiplex: simplify: %w", err)
	}

	// Stage 4: the pool is the single authoritative node ordering.
	pool := aggregatePool(simplified)

	// Stage 5+6: pad to the pool, then tag edges with the layer name.
	aligned := make(map[string]*core.Graph, len(layers))
	for k, g := range simplified {
		for _, id := range pool {
			if !g.HasVertex(id) {
				if err := g.AddVertex(id); err != nil {
					return nil, fmt.Errorf("NewMultiplex: pad layer %q: %w", names[k], err)
				}
			}
		}
		g.TagLayer(names[k])
		aligned[names[k]] = g
	}

	return &Multiplex{
		names:  names,
		layers: aligned,
		pool:   pool,
		index:  indexPool(pool),
	}, nil
}
