package rivercrossing_test

import (
	"fmt"

	rc "github.com/katalvlaran/courselab/rivercrossing"
)

// ExampleSolve prints both classic solutions, one state per crossing.
//
// Bits read <peasant wolf goat cabbage>; 1 is the far bank.
func ExampleSolve() {
	res, err := rc.Solve(rc.Start, rc.Goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, path := range res.Solutions {
		fmt.Printf("solution %d: %v\n", i+1, path)
	}
	// Output:
	// solution 1: [<0000> <1010> <0010> <1110> <0100> <1101> <0101> <1111>]
	// solution 2: [<0000> <1010> <0010> <1011> <0001> <1101> <0101> <1111>]
}

// ExampleWithOnSkip traces the crossings refused from the start state.
func ExampleWithOnSkip() {
	_, _ = rc.Solve(rc.Start, rc.Goal,
		rc.WithMaxDepth(1),
		rc.WithOnSkip(func(from, to rc.State, reason rc.SkipReason) error {
			fmt.Printf("%s → %s: %s\n", from, to, reason)
			return nil
		}))
	// Output:
	// <0000> → <1000>: dead-end
	// <0000> → <1100>: dead-end
	// <0000> → <1001>: dead-end
}
