package dsu

import (
	"errors"
	"sort"
)

// ErrInvalidSize indicates that a DSU cannot be created for a non-positive
// number of elements.
var ErrInvalidSize = errors.New("dsu: size must be positive")

// DSU is a disjoint-set forest over the indices 0..n-1.
// The zero value is unusable; construct with New.
type DSU struct {
	// parent maps each index to its parent in the forest; roots satisfy parent[i] == i.
	parent []int
	// rank tracks an upper bound on subtree height, used to keep unions shallow.
	rank []int
}

// New creates a DSU over 0..n-1 with every index in its own singleton set.
//
// Complexity: O(n) time and memory.
func New(n int) (*DSU, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
	}

	return d, nil
}

// Len returns the number of elements the DSU was created for.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the canonical representative of the set containing i.
// Two indices share a representative iff they have been unioned.
//
// Complexity: amortized O(α(n)).
func (d *DSU) Find(i int) int {
	// Walk up until the root, splicing each visited node to its grandparent.
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Union merges the sets containing a and b. Unioning elements already in
// the same set is a no-op.
func (d *DSU) Union(a, b int) {
	rootA := d.Find(a)
	rootB := d.Find(b)
	if rootA == rootB {
		return
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rootA] < d.rank[rootB] {
		d.parent[rootA] = rootB
	} else {
		d.parent[rootB] = rootA
		if d.rank[rootA] == d.rank[rootB] {
			d.rank[rootA]++
		}
	}
}

// Sets returns the current partition as a slice of index groups.
// Each group is sorted ascending; groups are ordered by their smallest member.
//
// Complexity: O(n·α(n) + n log n). Intended for inspection and tests, not hot paths.
func (d *DSU) Sets() [][]int {
	byRoot := make(map[int][]int, len(d.parent))
	for i := range d.parent {
		r := d.Find(i)
		byRoot[r] = append(byRoot[r], i)
	}

	sets := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		sets = append(sets, members)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i][0] < sets[j][0] })

	return sets
}
