// Package orbital implements symmetry-aware orbital reduction: a domain
// propagator that exploits structural symmetry of a mixed-integer program
// to prune the branch-and-bound tree without loss of optimality.
//
// What & Why
//
//   - Many optimization problems contain interchangeable variables: a
//     permutation group acting on the variable index space that maps
//     feasible solutions to feasible solutions of equal objective. Naïve
//     search then explores symmetric copies of the same subtree over and
//     over. Orbital reduction cuts those copies by propagating bound
//     tightenings that are valid for at least one optimal representative
//     of every symmetry class.
//
//   - The group is supplied externally, already computed, as one or more
//     components: sets of permutation generators acting on a common
//     variable support. This package never computes symmetry generators.
//
// The Two Propagation Steps
//
// Per component, every call to Registry.Propagate runs two steps, both
// driven by the stabilizer subgroup — the generators consistent with the
// branching decisions made so far and with any orbit whose symmetry was
// already broken globally before branching:
//
//  1. Orbital branching. The rooted path to the focus node's parent is
//     replayed from the shadow tree into working bound arrays. For each
//     branching decision at the focus node, the stabilizer subgroup just
//     before that decision is computed, its orbits are formed, and the
//     branching variable is propagated to dominate (be >= ) every other
//     variable in its orbit: their upper bounds are tightened to the
//     branching variable's. In the binary case this is exactly classic
//     orbital branching (Ostrowski et al., Math. Programming 126, 2011):
//     the 0-branch fixes the whole orbit to 0, the 1-branch is a tautology.
//
//  2. Orbital reduction. At the focus node itself, with all branching
//     decisions up to and including the node, the stabilizer's orbits are
//     computed and every orbit's bound intervals are intersected: each
//     member's lower bound rises to the orbit maximum, each upper bound
//     drops to the orbit minimum. An empty intersection proves the node
//     infeasible. This generalizes orbital fixing (Margot 2002, 2003).
//
// Lifecycle & State
//
//   - Components are registered with AddComponent after the problem is
//     transformed; each captures its variables, snapshots their global
//     bounds, and subscribes to bound changes to keep that snapshot fresh
//     until branching starts (the shadow tree grows past the root), at
//     which point the snapshot freezes and history is replayed from the
//     shadow tree instead.
//   - On the first propagation of a component, the orbits whose global
//     bounds already disagree are detected once and excluded from all
//     later reasoning (symmetry is broken for them); if that covers every
//     variable, the component is inert from then on.
//   - Reset frees all components and cancels their subscriptions.
//
// Execution Model
//
//   - Single-threaded, synchronous, fail-fast: propagation runs entirely
//     on the caller's stack, never spawns goroutines, and returns on the
//     first detected infeasibility. Infeasibility is reported as a Result
//     flag, not an error — the next call at another node proceeds normally.
//
// See example_test.go for an end-to-end walkthrough.
package orbital
