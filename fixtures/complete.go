package fixtures

import (
	"fmt"

	"github.com/katalvlaran/oocgraph/gmodel"
)

const minCompleteNodes = 1

// Complete returns every unordered pair {i,j}, i<j, of the complete simple
// graph K_n, in lexicographic (i,j) order. Requires n >= 1.
func Complete(n int) ([]gmodel.Edge, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("fixtures: Complete(n=%d) below minimum %d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	edges := make([]gmodel.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, gmodel.NewEdge(gmodel.Node(i), gmodel.Node(j)))
		}
	}
	return edges, nil
}
