package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// scenario is the decoded form of a scenario TOML file: the variables of
// the problem, the symmetry components handed to the propagator, and the
// search-tree nodes to replay in file order.
type scenario struct {
	Name       string              `toml:"name"`
	Vars       []scenarioVar       `toml:"vars"`
	Components []scenarioComponent `toml:"components"`
	Nodes      []scenarioNode      `toml:"nodes"`
}

// scenarioVar declares one variable. Absent bounds mean infinite.
type scenarioVar struct {
	Name string   `toml:"name"`
	Lb   *float64 `toml:"lb"`
	Ub   *float64 `toml:"ub"`
}

func (v scenarioVar) lb() float64 {
	if v.Lb == nil {
		return math.Inf(-1)
	}
	return *v.Lb
}

func (v scenarioVar) ub() float64 {
	if v.Ub == nil {
		return math.Inf(1)
	}
	return *v.Ub
}

// scenarioComponent names the variables of one symmetry component and its
// permutation generators over their index space.
type scenarioComponent struct {
	Vars       []string `toml:"vars"`
	Generators [][]int  `toml:"generators"`
}

// scenarioNode is one search-tree node: its parent ("root" or the name of
// an earlier node), the branching decisions taken to reach it, and the
// bound changes the solver's other propagators found there.
type scenarioNode struct {
	Name         string          `toml:"name"`
	Parent       string          `toml:"parent"`
	Branchings   []scenarioBound `toml:"branchings"`
	Propagations []scenarioBound `toml:"propagations"`
}

// scenarioBound is a single scripted bound change.
type scenarioBound struct {
	Var   string  `toml:"var"`
	Bound string  `toml:"bound"` // "lower" or "upper"
	Value float64 `toml:"value"`
}

// loadScenario reads and decodes a scenario file, checking the structural
// properties the replay relies on. Cross-references (variable and node
// names) are resolved during the replay itself.
func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if len(sc.Vars) == 0 {
		return nil, fmt.Errorf("%s: no variables declared", path)
	}
	for i, v := range sc.Vars {
		if v.Name == "" {
			return nil, fmt.Errorf("%s: vars[%d] has no name", path, i)
		}
	}
	for i, c := range sc.Components {
		if len(c.Vars) == 0 {
			return nil, fmt.Errorf("%s: components[%d] has no vars", path, i)
		}
	}
	for i, n := range sc.Nodes {
		if n.Name == "" || n.Name == "root" {
			return nil, fmt.Errorf("%s: nodes[%d] needs a unique non-root name", path, i)
		}
		if n.Parent == "" {
			return nil, fmt.Errorf("%s: node %q has no parent", path, n.Name)
		}
		for _, b := range n.Branchings {
			if b.Bound != "lower" && b.Bound != "upper" {
				return nil, fmt.Errorf("%s: node %q: bound must be \"lower\" or \"upper\", got %q", path, n.Name, b.Bound)
			}
		}
		for _, b := range n.Propagations {
			if b.Bound != "lower" && b.Bound != "upper" {
				return nil, fmt.Errorf("%s: node %q: bound must be \"lower\" or \"upper\", got %q", path, n.Name, b.Bound)
			}
		}
	}

	return &sc, nil
}
