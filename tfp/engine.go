package tfp

import (
	"github.com/katalvlaran/oocgraph/gmodel"
)

// Result is the outcome of a Run: the updated edge list and a per-swap
// debug record, in original batch order.
type Result struct {
	Edges   []gmodel.Edge
	Results []gmodel.SwapResult
	Stats   Stats
}

// Run decides every swap in batch against edges, in increasing swap-id
// order, and returns the updated sorted edge list plus a per-swap
// SwapResult. edges must already be sorted, loop-free, and duplicate-free;
// batch's SwapDescriptors are interpreted as positions into edges at the
// time each sub-batch starts (spec.md §4.8).
//
// The batch is split into rounds of cfg.SubBatchSize (the whole batch in
// one round if unset); after each round the updated edge list becomes the
// next round's input, so later swaps in a large batch see earlier swaps'
// effects without the caller re-submitting anything.
func Run(edges []gmodel.Edge, batch []gmodel.SwapDescriptor, opts ...Option) (Result, error) {
	if len(edges) == 0 {
		return Result{}, gmodel.InvalidInputf("tfp: Run requires a non-empty edge list")
	}
	for _, sw := range batch {
		if sw.Eid0 == sw.Eid1 {
			return Result{}, gmodel.InvalidInputf("tfp: swap descriptor names the same edge twice (%d)", sw.Eid0)
		}
		if int(sw.Eid0) >= len(edges) || int(sw.Eid1) >= len(edges) {
			return Result{}, gmodel.InvalidInputf("tfp: swap descriptor edge id out of range (%d edges)", len(edges))
		}
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	subSize := cfg.SubBatchSize
	if subSize <= 0 || subSize > len(batch) {
		subSize = len(batch)
	}
	if subSize == 0 {
		// empty batch: idempotent no-op (spec.md §8 "Idempotence")
		cur := make([]gmodel.Edge, len(edges))
		copy(cur, edges)
		return Result{Edges: cur, Results: nil, Stats: Stats{}}, nil
	}

	cur := make([]gmodel.Edge, len(edges))
	copy(cur, edges)

	allResults := make([]gmodel.SwapResult, 0, len(batch))
	var stats Stats

	for start := 0; start < len(batch); start += subSize {
		end := start + subSize
		if end > len(batch) {
			end = len(batch)
		}
		sub := batch[start:end]

		dc, err := buildDependencyChains(len(cur), sub, gmodel.SwapID(start), cfg)
		if err != nil {
			return Result{}, err
		}

		reqSorter, err := buildExistenceRequests(cur, sub, gmodel.SwapID(start), dc, cfg)
		if err != nil {
			return Result{}, err
		}

		infoSorter, succSorter, err := resolveExistence(cur, reqSorter, cfg)
		if err != nil {
			return Result{}, err
		}

		next, results, roundStats, err := decideSubBatch(cur, sub, gmodel.SwapID(start), dc, infoSorter, succSorter, cfg)
		if err != nil {
			return Result{}, err
		}

		cur = next
		allResults = append(allResults, results...)
		stats.EdgesTouched += roundStats.EdgesTouched
		stats.MessagesForwarded += roundStats.MessagesForwarded
		stats.SubBatches++
	}

	return Result{Edges: cur, Results: allResults, Stats: stats}, nil
}
