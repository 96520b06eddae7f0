package tfp

import (
	"github.com/katalvlaran/oocgraph/extpq"
	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
	"github.com/katalvlaran/oocgraph/merge"
)

// buildExistenceRequests implements Pass B (spec.md §4.5). No swap has been
// decided yet at this point — that only happens in Pass D, once Pass C has
// answered every existence query — so each edge's state is tracked as a
// set rather than a single value: initially just the edge the list holds,
// but every swap that touches it speculatively adds the candidate it would
// become if performed. The cartesian product of both incident edges' state
// sets gives every hypothetical post-swap edge the batch could produce;
// each is registered as an existence query (ForwardOnly false) so Pass C
// can resolve it, and each edge's own pre-states are registered too
// (ForwardOnly true) so Pass D can learn their existence along the same
// channel once a swap decides which branch actually happened.
//
// State sets only ever grow by the swaps that actually touch an edge, and
// adjacent duplicate candidates are dropped before insertion (same
// adjacent-only dedup as the original, spec.md §9 Open Question #2).
func buildExistenceRequests(edges []gmodel.Edge, batch []gmodel.SwapDescriptor, startSid gmodel.SwapID, dc *dependencyChains, cfg Config) (*extsort.Sorter[existReqMsg], error) {
	seedSorter := extsort.New[depChainMsg](
		extsort.ComparatorFunc[depChainMsg](depChainLess),
		depChainCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(32),
		extsort.WithLogger(cfg.Logger))

	for eid, sids := range dc.chains {
		first := sids[0]
		if err := seedSorter.Push(depChainMsg{Sid: first, Eid: eid, Edge: edges[eid]}); err != nil {
			return nil, err
		}
	}
	if err := seedSorter.Sort(); err != nil {
		return nil, err
	}
	defer seedSorter.Close()

	forwardQ := extpq.New[depChainMsg](extpq.ComparatorFunc[depChainMsg](depChainLess), extpq.WithLogger(cfg.Logger))
	stream := merge.New[depChainMsg](forwardQ, seedSorter, extsort.ComparatorFunc[depChainMsg](depChainLess))

	reqSorter := extsort.New[existReqMsg](
		extsort.ComparatorFunc[existReqMsg](existReqLess),
		existReqCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(25),
		extsort.WithLogger(cfg.Logger))

	for i, sw := range batch {
		sid := startSid + gmodel.SwapID(i)
		eids := [2]gmodel.EdgeID{sw.Eid0, sw.Eid1}

		var states [2][]gmodel.Edge
		for side, eid := range eids {
			for !stream.Empty() {
				v, ok := stream.Peek()
				if !ok || v.Sid != sid || v.Eid != eid {
					break
				}
				if n := len(states[side]); n == 0 || states[side][n-1] != v.Edge {
					states[side] = append(states[side], v.Edge)
				}
				if err := stream.Advance(); err != nil {
					return nil, err
				}
			}
			if len(states[side]) == 0 {
				return nil, gmodel.Invariantf("tfp: swap %d missing a dependency-chain state for edge %d", sid, eid)
			}
		}

		next0, hasNext0 := dc.nextAccessor(sw.Eid0, sid)
		next1, hasNext1 := dc.nextAccessor(sw.Eid1, sid)

		for _, s0 := range states[0] {
			for _, s1 := range states[1] {
				new0, new1 := gmodel.SwapEdges(s0, s1, sw.Dir)

				if hasNext0 {
					if err := stream.Push(depChainMsg{Sid: next0, Eid: sw.Eid0, Edge: new0}); err != nil {
						return nil, err
					}
				}
				if err := reqSorter.Push(existReqMsg{Edge: new0, Sid: sid, ForwardOnly: false}); err != nil {
					return nil, err
				}

				if hasNext1 {
					if err := stream.Push(depChainMsg{Sid: next1, Eid: sw.Eid1, Edge: new1}); err != nil {
						return nil, err
					}
				}
				if err := reqSorter.Push(existReqMsg{Edge: new1, Sid: sid, ForwardOnly: false}); err != nil {
					return nil, err
				}
			}
		}

		for _, s0 := range states[0] {
			if hasNext0 {
				if err := stream.Push(depChainMsg{Sid: next0, Eid: sw.Eid0, Edge: s0}); err != nil {
					return nil, err
				}
			}
			if err := reqSorter.Push(existReqMsg{Edge: s0, Sid: sid, ForwardOnly: true}); err != nil {
				return nil, err
			}
		}
		for _, s1 := range states[1] {
			if hasNext1 {
				if err := stream.Push(depChainMsg{Sid: next1, Eid: sw.Eid1, Edge: s1}); err != nil {
					return nil, err
				}
			}
			if err := reqSorter.Push(existReqMsg{Edge: s1, Sid: sid, ForwardOnly: true}); err != nil {
				return nil, err
			}
		}
	}

	if err := reqSorter.Sort(); err != nil {
		return nil, err
	}
	return reqSorter, nil
}
