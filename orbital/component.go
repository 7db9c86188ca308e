package orbital

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
	"github.com/katalvlaran/orbitals/shadowtree"
)

// component is one independent symmetry component: a set of permutation
// generators acting on the variables they collectively move.
//
// Index space: permvars holds only variables moved by at least one
// generator, and perms are re-indexed to that reduced space, so every
// index 0..len(permvars)-1 is in the support of the generator set.
type component struct {
	id       uuid.UUID           // identity for log correlation
	permvars []*bounds.Var       // moved variables, deduplicated, reduced index space
	perms    []perm.Perm         // generators over the reduced index space
	varindex map[*bounds.Var]int // variable -> index in permvars (lookup only)

	// Global bound snapshot, kept fresh by subscriptions until branching
	// starts, then frozen and used as the replay baseline.
	globalvarlbs []float64
	globalvarubs []float64
	subs         []*bounds.Subscription

	// lastnode guards the orbital branching step against re-running at the
	// same focus node.
	lastnode shadowtree.NodeID

	symstate        symState
	symbrokenvarids []int // indices whose orbit had mismatched global bounds
}

// newComponent builds a component from the raw (permvars, perms) pair:
// it validates the generators, removes fixed points from the index space,
// re-indexes the permutations, snapshots global bounds and subscribes to
// keep the snapshot current while the tree is still only a root.
//
// Returns (nil, nil) without error when no variable is moved at all; the
// caller reports that as an unsuccessful (but not erroneous) registration.
func newComponent(reg *Registry, permvars []*bounds.Var, perms []perm.Perm) (*component, error) {
	if len(permvars) == 0 || len(perms) == 0 {
		return nil, ErrNoVars
	}
	for _, p := range perms {
		if p.Len() != len(permvars) {
			return nil, ErrPermSize
		}
	}

	// Count the indices moved by the component.
	nmoved := 0
	for i := range permvars {
		if perm.Moved(perms, i) {
			nmoved++
		}
	}
	if nmoved == 0 {
		return nil, nil
	}

	c := &component{
		id:       uuid.New(),
		permvars: make([]*bounds.Var, 0, nmoved),
		varindex: make(map[*bounds.Var]int, nmoved),
		lastnode: shadowtree.None,
		symstate: symUnevaluated,
	}

	// Reduced variable array: moved variables only, original order kept.
	// oldToNew maps the caller's index space onto the reduced one.
	oldToNew := make([]int, len(permvars))
	for i, v := range permvars {
		oldToNew[i] = -1
		if !perm.Moved(perms, i) {
			continue
		}
		if _, dup := c.varindex[v]; dup {
			return nil, ErrDuplicateVar
		}
		oldToNew[i] = len(c.permvars)
		c.varindex[v] = len(c.permvars)
		c.permvars = append(c.permvars, v)
	}

	// Re-index the generators. A moved index always maps to a moved index,
	// so images inside the reduced space are total.
	c.perms = make([]perm.Perm, len(perms))
	for pi, p := range perms {
		reduced := make(perm.Perm, nmoved)
		for i, j := range p {
			if oldToNew[i] < 0 {
				continue
			}
			reduced[oldToNew[i]] = oldToNew[j]
		}
		c.perms[pi] = reduced
	}

	// Snapshot global bounds and keep them current until branching starts.
	c.globalvarlbs = make([]float64, nmoved)
	c.globalvarubs = make([]float64, nmoved)
	for i, v := range c.permvars {
		c.globalvarlbs[i] = v.Lb()
		c.globalvarubs[i] = v.Ub()
	}
	for i, v := range c.permvars {
		idx := i
		sub := reg.store.Subscribe(v, func(ev bounds.Event) {
			// Once branching has started the snapshot is frozen; later
			// history is replayed through the shadow tree instead.
			if reg.tree.Len() > 1 {
				return
			}
			switch ev.Type {
			case bounds.Lower:
				c.globalvarlbs[idx] = ev.New
			case bounds.Upper:
				c.globalvarubs[idx] = ev.New
			}
		})
		c.subs = append(c.subs, sub)
	}

	return c, nil
}

// free cancels the component's bound-change subscriptions. Safe to call twice.
func (c *component) free() {
	for _, sub := range c.subs {
		sub.Cancel()
	}
	c.subs = nil
}

// nvars returns the size of the reduced index space.
func (c *component) nvars() int { return len(c.permvars) }

// indexOf resolves a variable to its reduced index; ok is false for
// variables outside the component.
func (c *component) indexOf(v *bounds.Var) (int, bool) {
	i, ok := c.varindex[v]

	return i, ok
}
