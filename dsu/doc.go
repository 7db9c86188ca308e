// Package dsu provides a disjoint-set (union-find) structure over the
// integer indices 0..n-1.
//
// What & Why
//
//   - A disjoint-set forest partitions a fixed ground set into groups.
//     Union(a, b) merges the groups containing a and b; Find(a) returns a
//     canonical representative with the guarantee that Find(a) == Find(b)
//     if and only if a and b have been unioned, directly or transitively.
//
//   - In orbitals, the ground set is the index space of a symmetry
//     component's variables and the groups are the orbits of a permutation
//     group: unioning every index i with p[i] for every generator p yields
//     exactly the orbit partition of the generated group.
//
// Implementation
//
//   - Iterative Find with path compression (grandparent splicing) plus
//     union by rank. Any sequence of m operations on n elements runs in
//     O(m·α(n)) time, α being the inverse Ackermann function.
//   - Memory: O(n) for the parent and rank arrays.
//
// Error Conditions
//
//   - ErrInvalidSize — New called with a non-positive element count.
//     Find and Union on out-of-range indices are programming errors and
//     are not checked beyond the slice bounds themselves.
//
// See example_test.go for usage.
package dsu
