package fixtures

import (
	"fmt"

	"github.com/katalvlaran/oocgraph/gmodel"
)

const (
	minRRNodes             = 1
	maxStubMatchingAttempts = 8
)

// RandomRegular returns a simple undirected d-regular graph on n nodes via
// stub-matching with bounded retries: build n*d stubs, shuffle, pair
// adjacent stubs, and validate the pairing against the simple-graph
// constraint (no loops, no parallel edges) before accepting it. Requires
// n >= 1, 0 <= d < n, and n*d even (else ErrInvalidDegree). Reshuffles up
// to maxStubMatchingAttempts times before returning ErrConstructFailed.
func RandomRegular(n, d int, opts ...Option) ([]gmodel.Edge, error) {
	if n < minRRNodes {
		return nil, fmt.Errorf("fixtures: RandomRegular(n=%d) below minimum %d: %w", n, minRRNodes, ErrTooFewNodes)
	}
	if d < 0 || d >= n || (n*d)%2 != 0 {
		return nil, fmt.Errorf("fixtures: RandomRegular(n=%d,d=%d) has no simple realization: %w", n, d, ErrInvalidDegree)
	}
	if d == 0 {
		return nil, nil
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[gmodel.Edge]bool, len(stubs)/2)
		edges := make([]gmodel.Edge, 0, len(stubs)/2)
		valid := true
		for i := 0; i+1 < len(stubs); i += 2 {
			e := gmodel.NewEdge(gmodel.Node(stubs[i]), gmodel.Node(stubs[i+1]))
			if e.IsLoop() || seen[e] {
				valid = false
				break
			}
			seen[e] = true
			edges = append(edges, e)
		}
		if valid {
			return edges, nil
		}
	}

	return nil, fmt.Errorf("fixtures: RandomRegular(n=%d,d=%d) after %d attempts: %w",
		n, d, maxStubMatchingAttempts, ErrConstructFailed)
}
