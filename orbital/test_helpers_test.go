package orbital

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
	"github.com/katalvlaran/orbitals/shadowtree"
)

// fixture bundles the collaborators a propagation test needs.
type fixture struct {
	store *bounds.Store
	tree  *shadowtree.Tree
	reg   *Registry
}

// newFixture creates an empty store, a root-only tree and a registry.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := bounds.NewStore()
	tree := shadowtree.New()
	reg, err := NewRegistry(store, tree)
	require.NoError(t, err)

	return &fixture{store: store, tree: tree, reg: reg}
}

// vars creates n variables named x0..x(n-1), all with bounds [lb, ub].
func (f *fixture) vars(t *testing.T, n int, lb, ub float64) []*bounds.Var {
	t.Helper()

	vs := make([]*bounds.Var, n)
	for i := range vs {
		v, err := f.store.NewVar("x"+string(rune('0'+i)), lb, ub)
		require.NoError(t, err)
		vs[i] = v
	}

	return vs
}

// mustPerm validates and returns a permutation.
func mustPerm(t *testing.T, images ...int) perm.Perm {
	t.Helper()

	p, err := perm.New(images)
	require.NoError(t, err)

	return p
}
