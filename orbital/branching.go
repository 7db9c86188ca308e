package orbital

import (
	"errors"
	"math"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
	"github.com/katalvlaran/orbitals/shadowtree"
)

// applyOrbitalBranching is the orbital branching step: it mimics, for each
// branching decision recorded at the focus node, the constraint "branching
// variable >= every variable in its orbit", where the orbit is taken under
// the stabilizer subgroup as it stood just before that decision.
//
// History up to the focus node's parent is replayed from the shadow tree
// into working bound arrays seeded with the component's frozen global
// snapshot: propagation records refine the arrays, branching records
// accumulate the branched-variable set. Decisions at the focus node itself
// are then processed in recorded order; each one sees the stabilizer,
// orbits and working bounds left by its predecessors.
//
// Per decision:
//
//  1. stabilizer subgroup against the working bounds and branched set;
//  2. orbits of that subgroup;
//  3. orbit-interval intersection on the working arrays (bounds should
//     already agree within an orbit if the parent was fully propagated,
//     but that is not guaranteed — so it is enforced here);
//  4. the branching decision applied to the working arrays, conflicts
//     proving the node infeasible;
//  5. domination: every orbit sibling's upper bound drops to the branching
//     variable's, which is now the most restricted member of the orbit.
//     Lower bounds need no change: orbit members agreed before branching;
//  6. the branching variable joins the branched set for the next decision.
//
// Guarded by lastnode: re-invocation at the same focus node is a no-op,
// as is the root node (no branching history).
func (c *component) applyOrbitalBranching(reg *Registry, st SearchState) (int, bool, error) {
	if c.lastnode == st.Focus {
		return 0, false, nil
	}
	c.lastnode = st.Focus

	parent, err := reg.tree.Parent(st.Focus)
	if err != nil {
		return 0, false, err
	}
	if parent == shadowtree.None {
		return 0, false, nil
	}

	path, err := reg.tree.PathFromRoot(st.Focus)
	if err != nil {
		return 0, false, err
	}

	// Replay bound changes and branched variables up to the parent.
	work := newWorkingBounds(c.globalvarlbs, c.globalvarubs)
	branched := make([]int, 0, c.nvars())
	inBranched := make([]bool, c.nvars())
	for _, nodeid := range path[:len(path)-1] {
		for _, u := range reg.tree.Propagations(nodeid) {
			varid, ok := c.indexOf(u.Var)
			if !ok {
				continue
			}
			switch u.Type {
			case bounds.Lower:
				work.lbs[varid] = u.NewBound
			case bounds.Upper:
				work.ubs[varid] = u.NewBound
			}
		}
		for _, u := range reg.tree.Branchings(nodeid) {
			varid, ok := c.indexOf(u.Var)
			if !ok || inBranched[varid] {
				continue
			}
			branched = append(branched, varid)
			inBranched[varid] = true
		}
	}

	nred := 0
	for _, decision := range reg.tree.Branchings(st.Focus) {
		bvarid, ok := c.indexOf(decision.Var)
		if !ok {
			// Decision on a variable outside the component has no effect here.
			continue
		}

		// 1.+2. stabilizer just before this decision, and its orbits.
		chosen := c.stabilizerSubgroup(work, branched)
		ids, order, err := perm.OrbitPartition(c.nvars(), chosen)
		if err != nil {
			return nred, false, err
		}

		// 3. tighten within orbits so the branching variable's bounds are
		// the tightest of its orbit before the decision applies.
		nr, infeasible, err := c.reduceOrbits(reg, work, ids, order)
		nred += nr
		if err != nil || infeasible {
			return nred, infeasible, err
		}

		// 4. the decision itself, on the working arrays. The reduction above
		// may have made it redundant or contradictory.
		switch decision.Type {
		case bounds.Lower:
			if bounds.Gt(decision.NewBound, work.ubs[bvarid]) {
				return nred, true, nil
			}
			if bounds.Gt(decision.NewBound, work.lbs[bvarid]) {
				work.lbs[bvarid] = decision.NewBound
			}
		case bounds.Upper:
			if bounds.Lt(decision.NewBound, work.lbs[bvarid]) {
				return nred, true, nil
			}
			if bounds.Lt(decision.NewBound, work.ubs[bvarid]) {
				work.ubs[bvarid] = decision.NewBound
			}
		}

		// 5. domination: orbit siblings inherit the branching variable's
		// upper bound. Their lower bounds already agree, so only the upper
		// side moves.
		orbitid := ids[bvarid]
		for varid := 0; varid < c.nvars(); varid++ {
			if varid == bvarid || ids[varid] != orbitid {
				continue
			}

			work.ubs[varid] = work.ubs[bvarid]
			v := c.permvars[varid]
			if !math.IsInf(work.ubs[bvarid], 1) && bounds.Gt(v.Ub(), work.ubs[bvarid]) {
				tightened, terr := reg.store.TightenUb(v, work.ubs[bvarid])
				if terr != nil {
					if errors.Is(terr, bounds.ErrInfeasible) {
						return nred, true, nil
					}
					return nred, false, terr
				}
				if tightened {
					nred++
				}
			}
		}

		// 6. the branching variable counts as branched from now on.
		if !inBranched[bvarid] {
			branched = append(branched, bvarid)
			inBranched[bvarid] = true
		}
	}

	return nred, false, nil
}
