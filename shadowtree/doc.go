// Package shadowtree maintains a shadow replica of a branch-and-bound
// tree: for every search node it records the parent link, the bound
// changes found by propagation at that node, and the branching decisions
// that created its children's subproblems.
//
// What & Why
//
//   - A symmetry propagator must reason about the branching history on the
//     path from the root to the current node — which variables were
//     branched on, and which bound changes were applied where. The live
//     search tree of a solver is not organized for that replay, so the
//     solver mirrors its decisions into this shadow structure as it goes,
//     and propagators read it back without touching live search state.
//
// Representation
//
//   - Nodes live in an arena and are addressed by NodeID, a plain integer
//     index. The parent link is a NodeID too, with None marking the root.
//     This keeps the tree free of pointer cycles while preserving O(depth)
//     path reconstruction via PathFromRoot.
//   - Records are BoundUpdate values: the affected variable, the bound
//     side, and the new bound. Propagation records and branching-decision
//     records are kept separate because they play different roles during
//     replay: propagations only refine working bounds, while branchings
//     additionally mark their variable as branched.
//
// The package is append-only: nodes and records are added as the search
// advances and never removed. Consumers treat the tree as read-only.
//
// Error Conditions
//
//   - ErrUnknownNode — an operation referenced a NodeID outside the arena.
package shadowtree
