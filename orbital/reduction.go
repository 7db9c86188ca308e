package orbital

import (
	"errors"
	"math"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
	"github.com/katalvlaran/orbitals/shadowtree"
)

// reduceOrbits applies the orbit-interval-intersection step to precomputed
// orbits: within each orbit of size >= 2, every member's interval is
// tightened to [max of lower bounds, min of upper bounds].
//
// ids and order come from perm.OrbitPartition over the relevant stabilizer
// generators. src supplies the bound state to intersect (live bounds or
// replayed working arrays); working arrays are additionally updated via
// the setters so later replay steps see the tightened state. Live bounds
// are tightened through the store, each successful call counting as one
// reduction.
//
// Fail-fast: an empty intersection, or infeasibility signalled by a
// tightening, stops immediately. Tightenings already applied stand — they
// are sound regardless.
func (c *component) reduceOrbits(reg *Registry, src boundSource, ids, order []int) (int, bool, error) {
	n := c.nvars()
	nred := 0

	for begin := 0; begin < n; {
		orbitid := ids[order[begin]]
		end := begin + 1
		for end < n && ids[order[end]] == orbitid {
			end++
		}

		// Singleton orbits carry no information.
		if end-begin <= 1 {
			begin = end
			continue
		}

		// Intersect the member intervals.
		orbitlb := math.Inf(-1)
		orbitub := math.Inf(1)
		for i := begin; i < end; i++ {
			varid := order[i]
			if lb := src.lb(varid); bounds.Gt(lb, orbitlb) {
				orbitlb = lb
			}
			if ub := src.ub(varid); bounds.Lt(ub, orbitub) {
				orbitub = ub
			}
		}

		// Disjoint member domains prove the node infeasible.
		if bounds.Gt(orbitlb, orbitub) {
			return nred, true, nil
		}

		// Propagate the common interval to every member, skipping variables
		// already at the orbit bound (idempotence).
		for i := begin; i < end; i++ {
			varid := order[i]
			v := c.permvars[varid]

			src.setLb(varid, orbitlb)
			if !math.IsInf(orbitlb, -1) && bounds.Lt(v.Lb(), orbitlb) {
				tightened, err := reg.store.TightenLb(v, orbitlb)
				if err != nil {
					if errors.Is(err, bounds.ErrInfeasible) {
						return nred, true, nil
					}
					return nred, false, err
				}
				if tightened {
					nred++
				}
			}

			src.setUb(varid, orbitub)
			if !math.IsInf(orbitub, 1) && bounds.Gt(v.Ub(), orbitub) {
				tightened, err := reg.store.TightenUb(v, orbitub)
				if err != nil {
					if errors.Is(err, bounds.ErrInfeasible) {
						return nred, true, nil
					}
					return nred, false, err
				}
				if tightened {
					nred++
				}
			}
		}
		begin = end
	}

	return nred, false, nil
}

// applyOrbitalReduction is the orbital fixing step at the focus node:
// with the branching decisions of the whole rooted path (focus node
// included), compute the stabilizer subgroup on live bounds, form its
// orbits, and intersect the member intervals of every orbit.
func (c *component) applyOrbitalReduction(reg *Registry, st SearchState) (int, bool, error) {
	// Branched variables from the focus node up through all ancestors.
	branched := make([]int, 0, c.nvars())
	inBranched := make([]bool, c.nvars())
	for cur := st.Focus; cur != shadowtree.None; {
		for _, u := range reg.tree.Branchings(cur) {
			varid, ok := c.indexOf(u.Var)
			if !ok || inBranched[varid] {
				continue
			}
			branched = append(branched, varid)
			inBranched[varid] = true
		}
		parent, err := reg.tree.Parent(cur)
		if err != nil {
			return 0, false, err
		}
		cur = parent
	}

	chosen := c.stabilizerSubgroup(liveSource{vars: c.permvars}, branched)

	// A trivial stabilizer cannot yield reductions.
	if len(chosen) == 0 {
		return 0, false, nil
	}

	ids, order, err := perm.OrbitPartition(c.nvars(), chosen)
	if err != nil {
		return 0, false, err
	}

	return c.reduceOrbits(reg, liveSource{vars: c.permvars}, ids, order)
}
