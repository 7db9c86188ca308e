// Package orbital defines the configuration, result and search-state types
// shared by the orbital reduction propagator.
package orbital

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/orbitals/shadowtree"
)

// Result reports the outcome of one propagation call.
//
// Infeasible is a valid terminal signal, not an error: it states that the
// focus node's subproblem has no feasible solution. Reductions counts the
// bound tightenings actually applied to the store, including those made
// before infeasibility was detected.
type Result struct {
	Infeasible bool
	Reductions int
}

// SearchState describes where the surrounding branch-and-bound search is
// at the moment Propagate is called.
//
// Fields:
//   - Focus         — the node being propagated (a shadow tree id).
//   - Probing       — true during speculative, rolled-back dives; the
//     propagator must not act on state that will be undone.
//   - Repropagation — true when the solver revisits a node whose path to
//     the root may have changed; replay would be unsound, so the
//     propagator skips the call.
type SearchState struct {
	Focus         shadowtree.NodeID
	Probing       bool
	Repropagation bool
}

// Options configures a Registry. Use DefaultOptions and the With* helpers.
type Options struct {
	// Logger receives symmetry-broken warnings and per-step debug traces.
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger returns an Option that installs a logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with a logger that discards everything.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// symState tracks whether a component's symmetry-broken orbits have been
// identified. The transition symUnevaluated -> symEvaluated happens at
// most once, on the component's first propagation.
type symState uint8

const (
	symUnevaluated symState = iota
	symEvaluated
)
