package solver_test

import (
	"fmt"

	"github.com/katalvlaran/daygrid/solver"
)

// ExampleDomain shows the candidate set for a frame shrunk to a third of a
// 100-wide column: the 2-column partition is tried before the 3-column one.
func ExampleDomain() {
	for _, p := range solver.Domain(100.0/3.0, 100) {
		fmt.Printf("x=%.2f width=%.2f\n", p.X, p.Width)
	}

	// Output:
	// x=0.00 width=50.00
	// x=50.00 width=50.00
	// x=0.00 width=33.33
	// x=33.33 width=33.33
	// x=66.67 width=33.33
}
