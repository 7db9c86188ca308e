package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/orbitals/dsu"
)

// ExampleDSU demonstrates grouping indices with Union and reading the
// resulting partition back with Find and Sets.
func ExampleDSU() {
	// 1. Create a DSU over the indices 0..4.
	d, err := dsu.New(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Merge a few sets: {0,1,2} and {3,4}.
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(3, 4)

	// 3. Query membership and print the partition.
	fmt.Println(d.Find(0) == d.Find(2))
	fmt.Println(d.Find(0) == d.Find(4))
	fmt.Println(d.Sets())
	// Output:
	// true
	// false
	// [[0 1 2] [3 4]]
}
