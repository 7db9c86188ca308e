package orbital

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/orbitals/bounds"
	"github.com/katalvlaran/orbitals/perm"
)

// identifySymmetryBroken computes, once per component, the orbits whose
// global bounds already disagree. Symmetry cannot be exploited for those
// orbits — typically another symmetry-handling routine fixed their
// variables apart before branching — so every member index is recorded in
// symbrokenvarids and excluded from all later stabilizer reasoning.
//
// Works on the orbits of the full generator set, not a stabilizer: at this
// point no branching decision restricts the group yet. Transitions the
// component to symEvaluated; the caller guards against re-entry.
//
// No bound is changed here; the only side effect is component state.
func (c *component) identifySymmetryBroken(logger *log.Logger) error {
	n := c.nvars()

	ids, order, err := perm.OrbitPartition(n, c.perms)
	if err != nil {
		return err
	}

	// Walk the contiguous orbit ranges in the sorted order.
	for begin := 0; begin < n; {
		orbitid := ids[order[begin]]
		end := begin + 1
		for end < n && ids[order[end]] == orbitid {
			end++
		}

		// The orbit is intact only if all members share the same global bounds.
		first := order[begin]
		broken := false
		for i := begin + 1; i < end; i++ {
			j := order[i]
			if !bounds.Eq(c.globalvarlbs[first], c.globalvarlbs[j]) ||
				!bounds.Eq(c.globalvarubs[first], c.globalvarubs[j]) {
				broken = true
				break
			}
		}

		if broken {
			for i := begin; i < end; i++ {
				c.symbrokenvarids = append(c.symbrokenvarids, order[i])
			}
		}
		begin = end
	}

	c.symstate = symEvaluated

	if len(c.symbrokenvarids) > 0 {
		logger.Warn("symmetry broken before branching started; stabilizing affected orbits",
			"component", c.id, "affected", len(c.symbrokenvarids), "vars", n)
	}

	return nil
}
