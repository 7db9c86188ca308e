package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/orbital"
	"github.com/katalvlaran/orbitals/perm"
	"github.com/katalvlaran/orbitals/shadowtree"
)

// newRunCmd creates the run command: replay a scenario file node by node
// and report what orbital reduction deduced at each.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Replay a scenario file and report per-node reductions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			return runScenario(cmd, sc)
		},
	}
}

// replay holds the live state of one scenario run: the bound store and
// shadow tree standing in for the solver, plus name lookups for the
// scripted cross-references.
type replay struct {
	store *bounds.Store
	tree  *shadowtree.Tree
	reg   *orbital.Registry

	varsByName map[string]*bounds.Var
	nodeByName map[string]shadowtree.NodeID

	// While propagation runs at focus, bound changes it produces are
	// mirrored into the shadow tree so deeper nodes replay full history.
	focus     shadowtree.NodeID
	recording bool
}

// record is subscribed on every variable. It writes propagator-found
// tightenings to the shadow tree at the node being propagated, the way
// the solver's event stream feeds the tree in a real search.
func (r *replay) record(ev bounds.Event) {
	if !r.recording {
		return
	}
	_ = r.tree.RecordPropagation(r.focus, shadowtree.BoundUpdate{Var: ev.Var, Type: ev.Type, NewBound: ev.New})
}

func runScenario(cmd *cobra.Command, sc *scenario) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	r := &replay{
		store:      bounds.NewStore(),
		tree:       shadowtree.New(),
		varsByName: make(map[string]*bounds.Var, len(sc.Vars)),
		nodeByName: make(map[string]shadowtree.NodeID, len(sc.Nodes)+1),
	}
	r.nodeByName["root"] = r.tree.Root()

	var err error
	if r.reg, err = orbital.NewRegistry(r.store, r.tree, orbital.WithLogger(logger)); err != nil {
		return err
	}

	for _, sv := range sc.Vars {
		v, verr := r.store.NewVar(sv.Name, sv.lb(), sv.ub())
		if verr != nil {
			return fmt.Errorf("var %q: %w", sv.Name, verr)
		}
		r.varsByName[sv.Name] = v
		r.store.Subscribe(v, r.record)
	}

	for i, c := range sc.Components {
		permvars := make([]*bounds.Var, len(c.Vars))
		for j, name := range c.Vars {
			v, ok := r.varsByName[name]
			if !ok {
				return fmt.Errorf("components[%d]: unknown variable %q", i, name)
			}
			permvars[j] = v
		}
		perms := make([]perm.Perm, len(c.Generators))
		for j, g := range c.Generators {
			perms[j] = perm.Perm(g)
		}

		ok, cerr := r.reg.AddComponent(permvars, perms)
		if cerr != nil {
			return fmt.Errorf("components[%d]: %w", i, cerr)
		}
		if !ok {
			logger.Warn("component moves nothing, skipped", "index", i)
		}
	}

	if sc.Name != "" {
		logger.Info("replaying scenario", "name", sc.Name, "nodes", len(sc.Nodes))
	}

	for _, n := range sc.Nodes {
		res, nerr := r.enterNode(n)
		if nerr != nil {
			return nerr
		}
		if res.Infeasible {
			fmt.Fprintf(out, "node %s: INFEASIBLE (reductions=%d)\n", n.Name, res.Reductions)
			continue
		}
		fmt.Fprintf(out, "node %s: reductions=%d\n", n.Name, res.Reductions)
	}

	fmt.Fprintf(out, "total reductions: %d\n", r.reg.Statistics())
	for _, sv := range sc.Vars {
		v := r.varsByName[sv.Name]
		fmt.Fprintf(out, "  %s in [%g, %g]\n", v.Name(), v.Lb(), v.Ub())
	}

	return nil
}

// enterNode creates the scripted node, records and applies its bound
// changes, and runs propagation there. A scripted bound that crosses a
// bound the propagator already deduced proves the node infeasible; that is
// reported, not treated as an error.
func (r *replay) enterNode(n scenarioNode) (orbital.Result, error) {
	parent, ok := r.nodeByName[n.Parent]
	if !ok {
		return orbital.Result{}, fmt.Errorf("node %q: unknown parent %q", n.Name, n.Parent)
	}
	if _, dup := r.nodeByName[n.Name]; dup {
		return orbital.Result{}, fmt.Errorf("node %q declared twice", n.Name)
	}

	id, err := r.tree.NewChild(parent)
	if err != nil {
		return orbital.Result{}, err
	}
	r.nodeByName[n.Name] = id

	for _, b := range n.Branchings {
		u, uerr := r.update(n.Name, b)
		if uerr != nil {
			return orbital.Result{}, uerr
		}
		if rerr := r.tree.RecordBranching(id, u); rerr != nil {
			return orbital.Result{}, rerr
		}
		if infeasible, aerr := r.apply(u); aerr != nil || infeasible {
			return orbital.Result{Infeasible: infeasible}, aerr
		}
	}
	for _, b := range n.Propagations {
		u, uerr := r.update(n.Name, b)
		if uerr != nil {
			return orbital.Result{}, uerr
		}
		if rerr := r.tree.RecordPropagation(id, u); rerr != nil {
			return orbital.Result{}, rerr
		}
		if infeasible, aerr := r.apply(u); aerr != nil || infeasible {
			return orbital.Result{Infeasible: infeasible}, aerr
		}
	}

	r.focus, r.recording = id, true
	res, err := r.reg.Propagate(orbital.SearchState{Focus: id})
	r.recording = false
	if err != nil {
		return res, fmt.Errorf("node %q: %w", n.Name, err)
	}

	return res, nil
}

// update resolves a scripted bound change against the declared variables.
func (r *replay) update(node string, b scenarioBound) (shadowtree.BoundUpdate, error) {
	v, ok := r.varsByName[b.Var]
	if !ok {
		return shadowtree.BoundUpdate{}, fmt.Errorf("node %q: unknown variable %q", node, b.Var)
	}

	bt := bounds.Lower
	if b.Bound == "upper" {
		bt = bounds.Upper
	}

	return shadowtree.BoundUpdate{Var: v, Type: bt, NewBound: b.Value}, nil
}

// apply tightens the live bound the way the solver would on entering the
// node. Crossing bounds surface as infeasibility rather than failure.
func (r *replay) apply(u shadowtree.BoundUpdate) (bool, error) {
	var err error
	if u.Type == bounds.Lower {
		_, err = r.store.TightenLb(u.Var, u.NewBound)
	} else {
		_, err = r.store.TightenUb(u.Var, u.NewBound)
	}
	if errors.Is(err, bounds.ErrInfeasible) {
		return true, nil
	}

	return false, err
}
