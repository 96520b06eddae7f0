package cm

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/oocgraph/extsort"
)

// PlaceholderEdge is one edge (a,b) emitted by the upstream Havel-Hakimi
// generator. a and b may exceed NodeUpperBound for high-degree nodes,
// which are given shifted placeholder ids (spec §4.3).
type PlaceholderEdge struct {
	A, B uint64
}

// Config carries the external-interface fields of spec §6: the caller
// supplies node_upperbound, nodes_above_threshold, max_degree, threshold
// and a 32-bit seed. No CLI/env/file configuration lives in this package;
// cmd/oocgraph is responsible for turning user-facing flags into a Config.
type Config struct {
	// Seed drives both the per-half-edge random word and the CRC hash
	// comparator; the same seed and input always realize the same output.
	Seed uint32
	// NodeUpperBound is the true node id upper bound (exclusive).
	NodeUpperBound uint64
	// NodesAboveThreshold is the count of high-degree nodes needing
	// virtual-id widening so their half-edges distribute evenly (0
	// disables widening).
	NodesAboveThreshold uint64
	// MaxDegree and Threshold are carried through for parity with the
	// upstream generator's interface; cm.Generate does not itself enforce
	// them (Havel-Hakimi guarantees graphicality upstream and cm trusts
	// it, per spec §3).
	MaxDegree uint64
	Threshold uint64

	// MemoryBudget bounds the half-edge and output sorters. Defaults to
	// extsort.DefaultMemoryBudget.
	MemoryBudget int
	// Logger receives debug tracing; defaults to a no-op logger.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.MemoryBudget <= 0 {
		c.MemoryBudget = extsort.DefaultMemoryBudget
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
