// Package bounds provides the variable-bound state a branch-and-bound
// propagator works against: a Store of variables with lower/upper bounds,
// tightening operations that signal infeasibility, feasibility-tolerance
// comparisons, and bound-change subscriptions.
//
// Bounds & Tightening
//
//   - Every Var carries its current local bounds [Lb, Ub]. TightenLb and
//     TightenUb move one side of the interval inward and report whether a
//     change actually happened. A request that would empty the interval
//     (new lower bound above Ub, or new upper bound below Lb) fails with
//     ErrInfeasible and leaves the variable untouched — infeasibility is a
//     valid terminal signal for a propagator, not a corrupted state.
//   - All comparisons are made within Feastol, the feasibility tolerance:
//     two bounds closer than Feastol are considered equal, so repeated
//     tightening to the same value is a no-op. Infinite bounds are
//     supported via math.Inf.
//
// Subscriptions
//
//   - Subscribe registers a Handler invoked synchronously on every bound
//     change of one variable, with the bound type and the old and new
//     values. The returned Subscription is cancelled with Cancel, which is
//     idempotent; holders are expected to cancel on every exit path so a
//     handler never outlives its owner.
//
// Concurrency
//
//   - A Store is confined to a single goroutine; handlers run on the
//     caller's stack. This mirrors the synchronous, cooperative execution
//     model of the surrounding search loop.
//
// Error Conditions
//
//   - ErrInfeasible  — a tightening would empty a variable's interval.
//   - ErrEmptyDomain — NewVar called with lb > ub (beyond Feastol).
package bounds
