package cm

import (
	"math/rand/v2"

	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
)

// Generate materializes a pseudo-random edge list realizing the degree
// sequence implied by edges, widening high-degree node ids so their
// half-edges spread evenly across the random key space (spec §4.3).
//
// Generate streams: edges is consumed fully up front into a half-edge
// sorter bounded by cfg.MemoryBudget, then the sorted half-edges are
// re-paired into output edges, themselves streamed through a second
// bounded sorter so the result is available in ascending gmodel.Edge
// order without ever holding the full edge list in memory.
func Generate(edges []PlaceholderEdge, cfg Config) (*extsort.Sorter[gmodel.Edge], error) {
	if len(edges) == 0 {
		return nil, gmodel.InvalidInputf("cm: Generate requires at least one edge")
	}
	cfg = cfg.withDefaults()

	// H bounds how far a widened high-degree node id can shift without
	// colliding with the next node's widened range (ConfigurationModel.h's
	// "bucket size" derivation).
	var h uint64
	if cfg.NodesAboveThreshold > 0 {
		span := (uint64(1)<<gmodel.NodeBits - cfg.NodeUpperBound)
		h = span/cfg.NodesAboveThreshold - 1
		if h < 1 {
			return nil, gmodel.ResourceExhaustedf(
				"cm: NodeUpperBound too close to the 2^%d node space for %d widened nodes",
				gmodel.NodeBits, cfg.NodesAboveThreshold)
		}
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15))

	hsort := extsort.New[halfEdge](halfEdgeComparator{seed: cfg.Seed}, halfEdgeCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(8),
		extsort.WithLogger(cfg.Logger))

	for _, e := range edges {
		a, b := e.A, e.B
		if cfg.NodesAboveThreshold > 0 && a < cfg.NodesAboveThreshold {
			rShift := uint64(1) + rng.Uint64N(h)
			a = cfg.NodeUpperBound + rShift*cfg.NodesAboveThreshold + a
			if b < cfg.NodesAboveThreshold {
				b = cfg.NodeUpperBound + rShift*cfg.NodesAboveThreshold + b
			}
		}

		r := rng.Uint64()
		fst := (r & high28Mask) | (a & gmodel.NodeMask)
		snd := (r << gmodel.NodeBits) | (b & gmodel.NodeMask)

		if err := hsort.Push(halfEdge(fst)); err != nil {
			return nil, err
		}
		if err := hsort.Push(halfEdge(snd)); err != nil {
			return nil, err
		}
	}

	if err := hsort.Sort(); err != nil {
		return nil, err
	}
	defer hsort.Close()

	outsort := extsort.New[gmodel.Edge](
		extsort.ComparatorFunc[gmodel.Edge](gmodel.Edge.Less),
		gmodel.EdgeCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(16),
		extsort.WithLogger(cfg.Logger))

	for !hsort.Empty() {
		first, err := hsort.Pop()
		if err != nil {
			return nil, err
		}
		if hsort.Empty() {
			return nil, gmodel.Invariantf("cm: Generate encountered an odd number of half-edges")
		}
		second, err := hsort.Pop()
		if err != nil {
			return nil, err
		}

		e := gmodel.NewEdge(gmodel.Node(first.node()), gmodel.Node(second.node()))
		if err := outsort.Push(e); err != nil {
			return nil, err
		}
	}

	if err := outsort.Sort(); err != nil {
		return nil, err
	}
	return outsort, nil
}

// high28Mask isolates the 28-bit random key occupying the top bits of a
// packed 64-bit word, leaving the low gmodel.NodeBits bits for the node id.
const high28Mask uint64 = 0xFFFFFFF000000000
