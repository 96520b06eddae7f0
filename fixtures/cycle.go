package fixtures

import (
	"fmt"

	"github.com/katalvlaran/oocgraph/gmodel"
)

const minCycleNodes = 3

// Cycle returns the n edges of a simple cycle 0-1-...-(n-1)-0, in stable
// emission order i -> (i+1) mod n. Requires n >= 3.
func Cycle(n int) ([]gmodel.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("fixtures: Cycle(n=%d) below minimum %d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	edges := make([]gmodel.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = gmodel.NewEdge(gmodel.Node(i), gmodel.Node((i+1)%n))
	}
	return edges, nil
}
