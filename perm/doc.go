// Package perm provides index permutations and orbit computation for
// permutation groups given by generating sets.
//
// What & Why
//
//   - A Perm over n elements is a bijection of 0..n-1 onto itself, stored
//     as an image array: p[i] is the index i maps to, and p[i] == i means
//     the permutation fixes i.
//
//   - A set of permutations generates a group; the orbit of an index i is
//     every index reachable from i by repeatedly applying generators (or
//     their inverses). Orbits partition 0..n-1, and that partition is what
//     symmetry-aware propagation reasons about: variables in one orbit are
//     interchangeable until branching breaks the symmetry.
//
// Orbit Computation
//
//   - OrbitPartition unions i with p[i] for every generator p and every
//     moved index i in a disjoint-set structure (package dsu). Since orbit
//     membership is closed under inverses and composition, the generators
//     alone suffice: the connected components of the "i maps to p[i]"
//     relation are exactly the orbits of the generated group.
//
//   - The result is returned as an orbit id per index plus an index order
//     sorted by orbit id, so callers can walk orbits as contiguous slices
//     in a single linear scan. Complexity: O(g·n·α(n) + n log n) for g
//     generators.
//
// Error Conditions
//
//   - ErrNotPermutation — New received an image array that is not a
//     bijection of 0..n-1 (out-of-range or duplicate images).
//   - ErrLengthMismatch — OrbitPartition received a generator whose length
//     differs from the ground-set size.
//
// See example_test.go for usage.
package perm
