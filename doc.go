// Package orbitals is a symmetry propagation toolkit for branch-and-bound
// search: it detects, at every node of a search tree, the variable bound
// reductions that follow from permutation symmetries of the problem alone.
//
// 🚀 What is orbitals?
//
//	A propagator core that brings together:
//		• Orbital branching: branching decisions dominate their whole
//		  symmetry orbit under the stabilizer of earlier decisions
//		• Orbital reduction: orbit members share the intersection of
//		  their local bound intervals
//		• Shadow tree: a lightweight mirror of the solver's search tree,
//		  replaying branching and propagation history on demand
//
// ✨ Why choose orbitals?
//
//   - Solver-agnostic – drive it from any search loop via a bound store
//     and a shadow tree, no solver callbacks required
//   - Sound by construction – symmetry-broken orbits are detected once
//     and excluded for the rest of the solve
//   - Deterministic – identical inputs yield identical reductions
//
// Under the hood, everything is organized under small subpackages:
//
//	bounds/     — variables, local bounds, feasibility-tolerant comparisons
//	dsu/        — disjoint-set union backing the orbit computation
//	perm/       — permutations and orbit partitions of generator sets
//	shadowtree/ — the replayable mirror of the search tree
//	orbital/    — the propagator itself: components, stabilizers, reductions
//
// The cmd/orbitals tool replays scripted scenarios from TOML files; see
// examples/ for a starting point.
//
//	go get github.com/katalvlaran/orbitals
package orbitals
