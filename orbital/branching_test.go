package orbital_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitals/orbital"
	"github.com/katalvlaran/orbitals/perm"
)

// TestBranching_DominationGeneralInteger verifies the domination step on a
// general-integer branch: after branching x0 <= 2 the orbit sibling's
// upper bound must drop to the branching variable's.
func TestBranching_DominationGeneralInteger(t *testing.T) {
	h := newHarness(t)
	vs := h.newVars(t, 2, 0, 5)

	ok, err := h.reg.AddComponent(vs, []perm.Perm{{1, 0}})
	require.NoError(t, err)
	require.True(t, ok)

	child := h.branchChild(t, h.tree.Root(), upper(vs[0], 2))

	res, err := h.reg.Propagate(orbital.SearchState{Focus: child})
	require.NoError(t, err)
	assert.False(t, res.Infeasible)
	assert.Equal(t, 1, res.Reductions)
	assert.LessOrEqual(t, vs[1].Ub(), vs[0].Ub(), "orbit member must not exceed the branching variable")
	assert.Equal(t, 2.0, vs[1].Ub())
}

// TestBranching_StabilizerAfterAncestorBranch walks two levels deep: the
// first branch on x0 shrinks the stabilizer to the generators fixing x0,
// so the second branch on x1 only dominates x2.
func TestBranching_StabilizerAfterAncestorBranch(t *testing.T) {
	h := newHarness(t)
	vs := h.newVars(t, 3, 0, 1)

	// Full symmetric group on {x0,x1,x2}.
	ok, err := h.reg.AddComponent(vs, []perm.Perm{{1, 0, 2}, {0, 2, 1}})
	require.NoError(t, err)
	require.True(t, ok)

	// Level 1: one-branch on x0; carries no information (tautology).
	nodeA := h.branchChild(t, h.tree.Root(), lower(vs[0], 1))
	res, err := h.reg.Propagate(orbital.SearchState{Focus: nodeA})
	require.NoError(t, err)
	require.Equal(t, orbital.Result{}, res)

	// Level 2: zero-branch on x1. The stabilizer of the x0 branching is
	// generated by swap(x1,x2) alone, so x2 is forced to zero while x0
	// keeps its one-branch bounds.
	nodeB := h.branchChild(t, nodeA, upper(vs[1], 0))
	res, err = h.reg.Propagate(orbital.SearchState{Focus: nodeB})
	require.NoError(t, err)
	assert.False(t, res.Infeasible)
	assert.Equal(t, 1, res.Reductions)
	assert.Equal(t, 0.0, vs[2].Ub())
	assert.Equal(t, 1.0, vs[0].Lb())
	assert.Equal(t, 1.0, vs[0].Ub())
}

// TestBranching_ReductionBeforeDecisionInfeasible covers the orbit
// intersection that runs just before a branching decision is applied:
// propagation at the parent capped the orbit, so branching above the cap
// is hopeless and must surface as infeasibility.
func TestBranching_ReductionBeforeDecisionInfeasible(t *testing.T) {
	h := newHarness(t)
	vs := h.newVars(t, 2, 0, 5)

	ok, err := h.reg.AddComponent(vs, []perm.Perm{{1, 0}})
	require.NoError(t, err)
	require.True(t, ok)

	// Parent propagation: ub(x1) = 2, capping the whole orbit at 2.
	nodeA, err := h.tree.NewChild(h.tree.Root())
	require.NoError(t, err)
	h.propagateAt(t, nodeA, upper(vs[1], 2))

	// Child branches x0 >= 3, above the orbit cap.
	nodeB := h.branchChild(t, nodeA, lower(vs[0], 3))

	res, err := h.reg.Propagate(orbital.SearchState{Focus: nodeB})
	require.NoError(t, err)
	assert.True(t, res.Infeasible)
}
