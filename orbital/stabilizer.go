package orbital

import (
	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
)

// boundSource supplies the bound state the stabilizer filters and the
// orbit intersection read from — either the live store bounds or replayed
// working arrays. The setters exist so orbit intersection can keep working
// arrays consistent; the live source ignores them because live bounds are
// only changed through the store's tightening calls.
type boundSource interface {
	lb(i int) float64
	ub(i int) float64
	setLb(i int, b float64)
	setUb(i int, b float64)
}

// liveSource reads the component variables' current local bounds.
type liveSource struct {
	vars []*bounds.Var
}

func (s liveSource) lb(i int) float64 { return s.vars[i].Lb() }
func (s liveSource) ub(i int) float64 { return s.vars[i].Ub() }
func (s liveSource) setLb(int, float64) {}
func (s liveSource) setUb(int, float64) {}

// workingBounds is the replayed bound state along a rooted shadow path.
type workingBounds struct {
	lbs []float64
	ubs []float64
}

// newWorkingBounds copies the component's global snapshot as the replay baseline.
func newWorkingBounds(glbs, gubs []float64) *workingBounds {
	w := &workingBounds{
		lbs: make([]float64, len(glbs)),
		ubs: make([]float64, len(gubs)),
	}
	copy(w.lbs, glbs)
	copy(w.ubs, gubs)

	return w
}

func (w *workingBounds) lb(i int) float64 { return w.lbs[i] }
func (w *workingBounds) ub(i int) float64 { return w.ubs[i] }
func (w *workingBounds) setLb(i int, b float64) { w.lbs[i] = b }
func (w *workingBounds) setUb(i int, b float64) { w.ubs[i] = b }

// stabilizerSubgroup returns the generators consistent with the current
// partial assignment: a generating set for the subgroup of the component's
// symmetry group that stabilizes both the globally symmetry-broken orbits
// and the branching decisions made so far.
//
// Two filters, tested against src:
//
//  1. For every symmetry-broken index v: the generator must map v to an
//     index holding the same fixed value. Because lb <= ub everywhere in
//     an orbit and the whole orbit is checked generator by generator, the
//     single test ub(v) == lb(p[v]) is enough to force the chain of
//     equalities. Generators fixing v pass trivially.
//
//  2. For every branched index v, in branching order: the generator must
//     not map v to an index with a strictly tighter bound in the branching
//     direction, i.e. ub(v) <= lb(p[v]) must not fail: reject when
//     ub(v) > lb(p[v]). Orbit members share identical pre-branch bounds,
//     so this single inequality covers both branching directions.
//
// Returns the surviving generators; an empty result means the stabilizer
// is trivial and no propagation is possible.
func (c *component) stabilizerSubgroup(src boundSource, branched []int) []perm.Perm {
	chosen := make([]perm.Perm, 0, len(c.perms))

	for _, p := range c.perms {
		ok := true

		for _, varid := range c.symbrokenvarids {
			image := p[varid]
			if image == varid {
				continue
			}
			if !bounds.Eq(src.ub(varid), src.lb(image)) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		for _, varid := range branched {
			image := p[varid]
			if image == varid {
				continue
			}
			if bounds.Gt(src.ub(varid), src.lb(image)) {
				ok = false
				break
			}
		}
		if ok {
			chosen = append(chosen, p)
		}
	}

	return chosen
}
