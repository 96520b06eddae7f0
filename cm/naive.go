package cm

import (
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/oocgraph/gmodel"
)

type naiveHalfEdge struct {
	key  uint64
	node uint64
}

// GenerateNaive is the supplemented in-memory cross-check path, grounded in
// the original implementation's HavelHakimi_ConfigurationModel_Random test
// helper: every half-edge draws one independent uniformly random 64-bit
// key with no bit-slice widening trick, and pairing falls out of a plain
// in-memory sort.
//
// Unlike the original test helper, ties break on node id rather than by
// constructing a fresh default-seeded RNG per comparison: that scheme is
// observably not antisymmetric (two calls comparing the same pair in
// opposite order can each report true), which quicksort's correctness
// depends on not happening. GenerateNaive exists to validate Generate's
// degree-sequence preservation independently, so it deliberately does not
// reproduce that bug.
func GenerateNaive(edges []PlaceholderEdge, seed uint32) []gmodel.Edge {
	if len(edges) == 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0xdeadbeefcafebabe))

	halves := make([]naiveHalfEdge, 0, len(edges)*2)
	for _, e := range edges {
		halves = append(halves,
			naiveHalfEdge{key: rng.Uint64(), node: e.A},
			naiveHalfEdge{key: rng.Uint64(), node: e.B},
		)
	}

	sort.Slice(halves, func(i, j int) bool {
		if halves[i].key != halves[j].key {
			return halves[i].key < halves[j].key
		}
		return halves[i].node < halves[j].node
	})

	out := make([]gmodel.Edge, 0, len(halves)/2)
	for i := 0; i+1 < len(halves); i += 2 {
		out = append(out, gmodel.NewEdge(gmodel.Node(halves[i].node), gmodel.Node(halves[i+1].node)))
	}
	return out
}
