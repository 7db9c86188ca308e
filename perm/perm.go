package perm

import (
	"errors"
	"slices"
	"sort"

	"github.com/katalvlaran/orbitals/dsu"
)

// ErrNotPermutation indicates an image array that is not a bijection of 0..n-1.
var ErrNotPermutation = errors.New("perm: images do not form a permutation")

// ErrLengthMismatch indicates a generator whose length differs from the ground-set size.
var ErrLengthMismatch = errors.New("perm: generator length differs from ground-set size")

// Perm is a permutation of 0..n-1 in image-array form: p[i] is the image of i.
type Perm []int

// New validates images as a bijection of 0..len(images)-1 and returns it as a
// Perm. The slice is copied, so the caller keeps ownership of images.
//
// Returns ErrNotPermutation if any image is out of range or duplicated.
func New(images []int) (Perm, error) {
	seen := make([]bool, len(images))
	for _, j := range images {
		if j < 0 || j >= len(images) || seen[j] {
			return nil, ErrNotPermutation
		}
		seen[j] = true
	}

	return Perm(slices.Clone(images)), nil
}

// Identity returns the identity permutation on n elements.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Len returns the size of the ground set the permutation acts on.
func (p Perm) Len() int { return len(p) }

// Fixes reports whether the permutation maps i to itself.
func (p Perm) Fixes(i int) bool { return p[i] == i }

// Support returns the sorted indices moved by the permutation.
func (p Perm) Support() []int {
	var moved []int
	for i, j := range p {
		if i != j {
			moved = append(moved, i)
		}
	}

	return moved
}

// Moved reports whether index i is moved by at least one of the permutations.
func Moved(perms []Perm, i int) bool {
	for _, p := range perms {
		if !p.Fixes(i) {
			return true
		}
	}

	return false
}

// OrbitPartition computes the orbits of the group generated by perms on the
// ground set 0..n-1.
//
// It returns:
//
//	ids   — ids[i] is a canonical orbit id for index i (a dsu representative);
//	order — the indices 0..n-1 stably sorted by orbit id, so each orbit
//	        occupies a contiguous range order[begin:end].
//
// Generators that fix every index (identity) contribute nothing. A single
// sorted grouping pass over order is the intended way to visit orbits;
// no bisection over the sorted array is needed.
//
// Returns dsu.ErrInvalidSize for n <= 0 and ErrLengthMismatch if a
// generator acts on a different ground-set size.
func OrbitPartition(n int, perms []Perm) (ids []int, order []int, err error) {
	d, err := dsu.New(n)
	if err != nil {
		return nil, nil, err
	}

	for _, p := range perms {
		if p.Len() != n {
			return nil, nil, ErrLengthMismatch
		}
		for i, j := range p {
			if i != j {
				d.Union(i, j)
			}
		}
	}

	ids = make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = d.Find(i)
	}

	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ids[order[a]] < ids[order[b]] })

	return ids, order, nil
}
