package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitals/perm"
)

// TestNew_Validation verifies bijection checks on the image array.
func TestNew_Validation(t *testing.T) {
	// Valid transposition.
	p, err := perm.New([]int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, p[0])
	assert.True(t, p.Fixes(2))

	// Out-of-range image.
	_, err = perm.New([]int{0, 3, 2})
	assert.ErrorIs(t, err, perm.ErrNotPermutation)

	// Duplicate image.
	_, err = perm.New([]int{0, 0, 2})
	assert.ErrorIs(t, err, perm.ErrNotPermutation)
}

// TestSupport_And_Moved verifies the moved-index helpers.
func TestSupport_And_Moved(t *testing.T) {
	p, err := perm.New([]int{1, 0, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, p.Support())
	assert.True(t, perm.Moved([]perm.Perm{p}, 1))
	assert.False(t, perm.Moved([]perm.Perm{p}, 3))
	assert.Empty(t, perm.Identity(4).Support())
}

// bruteOrbit computes the orbit of start by closure over the generators,
// the slow but obviously correct way.
func bruteOrbit(n int, perms []perm.Perm, start int) map[int]bool {
	orbit := map[int]bool{start: true}
	for changed := true; changed; {
		changed = false
		for _, p := range perms {
			for i := range orbit {
				if !orbit[p[i]] {
					orbit[p[i]] = true
					changed = true
				}
			}
		}
	}

	return orbit
}

// TestOrbitPartition_MatchesClosure cross-checks the DSU-based orbit
// partition against a brute-force orbit closure on small generator sets.
func TestOrbitPartition_MatchesClosure(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		perms [][]int
	}{
		{"transposition", 3, [][]int{{1, 0, 2}}},
		{"three_cycle", 4, [][]int{{1, 2, 0, 3}}},
		{"full_symmetric_group", 3, [][]int{{1, 0, 2}, {0, 2, 1}}},
		{"two_components", 6, [][]int{{1, 0, 2, 3, 4, 5}, {0, 1, 3, 2, 4, 5}, {0, 1, 2, 3, 5, 4}}},
		{"identity_only", 4, [][]int{{0, 1, 2, 3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			perms := make([]perm.Perm, 0, len(tc.perms))
			for _, images := range tc.perms {
				p, err := perm.New(images)
				require.NoError(t, err)
				perms = append(perms, p)
			}

			ids, order, err := perm.OrbitPartition(tc.n, perms)
			require.NoError(t, err)
			require.Len(t, ids, tc.n)
			require.ElementsMatch(t, order, perm.Identity(tc.n))

			// Same orbit id iff mutually reachable under the generated group.
			for a := 0; a < tc.n; a++ {
				orbit := bruteOrbit(tc.n, perms, a)
				for b := 0; b < tc.n; b++ {
					assert.Equal(t, orbit[b], ids[a] == ids[b],
						"indices %d and %d, generator set %q", a, b, tc.name)
				}
			}

			// order must group equal orbit ids contiguously.
			seen := map[int]bool{}
			for i := 0; i < tc.n; i++ {
				id := ids[order[i]]
				if i == 0 || id != ids[order[i-1]] {
					assert.False(t, seen[id], "orbit id %d appears in two ranges", id)
					seen[id] = true
				}
			}
		})
	}
}

// TestOrbitPartition_LengthMismatch verifies the generator-size guard.
func TestOrbitPartition_LengthMismatch(t *testing.T) {
	p, err := perm.New([]int{1, 0})
	require.NoError(t, err)

	_, _, err = perm.OrbitPartition(3, []perm.Perm{p})
	assert.ErrorIs(t, err, perm.ErrLengthMismatch)
}
