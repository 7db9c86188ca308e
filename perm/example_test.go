package perm_test

import (
	"fmt"

	"github.com/katalvlaran/orbitals/perm"
)

// ExampleOrbitPartition demonstrates computing the orbits of a small
// permutation group given by two generators on five indices.
func ExampleOrbitPartition() {
	// 1. Generators: swap(0,1) and swap(1,2); indices 3 and 4 stay fixed.
	swap01, _ := perm.New([]int{1, 0, 2, 3, 4})
	swap12, _ := perm.New([]int{0, 2, 1, 3, 4})

	// 2. Compute the orbit partition of the generated group.
	ids, order, err := perm.OrbitPartition(5, []perm.Perm{swap01, swap12})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Walk the contiguous orbit ranges.
	for begin := 0; begin < len(order); {
		end := begin + 1
		for end < len(order) && ids[order[end]] == ids[order[begin]] {
			end++
		}
		fmt.Println(order[begin:end])
		begin = end
	}
	// Output:
	// [0 1 2]
	// [3]
	// [4]
}
