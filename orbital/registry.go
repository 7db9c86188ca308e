package orbital

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
	"github.com/katalvlaran/orbitals/shadowtree"
)

// Registry owns the symmetry components of one solve and drives their
// propagation. It is rebuilt per solve; nothing is persisted.
type Registry struct {
	store *bounds.Store
	tree  *shadowtree.Tree
	log   *log.Logger

	components []*component
	nred       int // total reductions over the lifetime of the registry
}

// NewRegistry creates a Registry over the given bound store and shadow tree.
func NewRegistry(store *bounds.Store, tree *shadowtree.Tree, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if tree == nil {
		return nil, ErrNilTree
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{store: store, tree: tree, log: o.Logger}, nil
}

// AddComponent registers a symmetry component given by its variable array
// and permutation generators over that array's index space.
//
// Fixed points are removed: variables moved by no generator are dropped
// and the generators are re-indexed to the remaining variables. Returns
// (false, nil) when nothing is moved at all — a registration that cannot
// help but is not an error, mirroring how an upstream symmetry detector
// may hand over trivial components.
//
// The permutations must be valid bijections of 0..len(permvars)-1
// (perm.ErrNotPermutation otherwise); components are meant to be
// registered on the transformed problem, before branching starts.
func (r *Registry) AddComponent(permvars []*bounds.Var, perms []perm.Perm) (bool, error) {
	for _, p := range perms {
		if _, err := perm.New(p); err != nil {
			return false, err
		}
	}

	c, err := newComponent(r, permvars, perms)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}

	r.components = append(r.components, c)
	r.log.Debug("component registered", "component", c.id, "vars", c.nvars(), "perms", len(c.perms))

	return true, nil
}

// Reset frees all components, cancelling their bound-change subscriptions.
// The registry can be reused by registering new components afterwards.
func (r *Registry) Reset() {
	for _, c := range r.components {
		c.free()
	}
	r.components = nil
}

// Statistics returns the total number of bound reductions applied by this
// registry over all Propagate calls.
func (r *Registry) Statistics() int { return r.nred }

// ComponentSizes returns the generator count of every registered
// component, in registration order. Intended for statistics output.
func (r *Registry) ComponentSizes() []int {
	sizes := make([]int, len(r.components))
	for i, c := range r.components {
		sizes[i] = len(c.perms)
	}

	return sizes
}

// Propagate runs orbital reduction for the focus node described by st.
//
// No-op (zero Result, nil error) when no components are registered, when
// the search is probing (speculative state will be rolled back), or when
// this is a repropagation pass (the path to the root cannot be trusted).
//
// Otherwise components are propagated in registration order; reduction
// counts aggregate, and the loop stops on the first infeasibility while
// preserving the partial count.
func (r *Registry) Propagate(st SearchState) (Result, error) {
	if len(r.components) == 0 || st.Probing || st.Repropagation {
		return Result{}, nil
	}
	if !r.tree.Valid(st.Focus) {
		return Result{}, shadowtree.ErrUnknownNode
	}

	var res Result
	for _, c := range r.components {
		cres, err := r.propagateComponent(c, st)
		res.Reductions += cres.Reductions
		if err != nil {
			return res, err
		}
		if cres.Infeasible {
			res.Infeasible = true
			break
		}
	}

	r.nred += res.Reductions
	r.log.Debug("propagated", "node", st.Focus, "reductions", res.Reductions, "infeasible", res.Infeasible)

	return res, nil
}

// propagateComponent runs the two-step mechanism for one component:
// the one-time symmetry-broken transition, then orbital branching, then
// orbital reduction, short-circuiting on infeasibility.
func (r *Registry) propagateComponent(c *component, st SearchState) (Result, error) {
	if c.symstate == symUnevaluated {
		if err := c.identifySymmetryBroken(r.log); err != nil {
			return Result{}, err
		}
	}

	// Terminal shortcut: symmetry broken on every orbit leaves nothing to do.
	if len(c.symbrokenvarids) == c.nvars() {
		return Result{}, nil
	}

	nred, infeasible, err := c.applyOrbitalBranching(r, st)
	if err != nil || infeasible {
		return Result{Infeasible: infeasible, Reductions: nred}, err
	}

	nred2, infeasible, err := c.applyOrbitalReduction(r, st)

	return Result{Infeasible: infeasible, Reductions: nred + nred2}, err
}
