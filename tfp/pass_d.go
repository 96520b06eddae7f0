package tfp

import (
	"github.com/katalvlaran/oocgraph/extpq"
	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
	"github.com/katalvlaran/oocgraph/merge"
)

// decideSubBatch implements Pass D (spec.md §4.7): the only pass that
// actually performs a swap. It walks the batch in increasing swap-id
// order, re-deriving each edge's pre-swap state from the same
// dependency-chain seed Pass A produced (a single live value per edge,
// since by construction exactly one branch of Pass B's speculative state
// set is ever forwarded past this point), consults Pass C's existence
// answers to detect loops/conflicts, and forwards both the decided edge
// state and the decided existence bit onward to whichever later swap
// needs them next. Two priority queues are live for the length of this
// pass: forwardQ carries decided edge values, infoPQ carries decided
// existence bits (spec.md §5 "peak is Pass D").
func decideSubBatch(
	edges []gmodel.Edge,
	batch []gmodel.SwapDescriptor,
	startSid gmodel.SwapID,
	dc *dependencyChains,
	infoSorter *extsort.Sorter[existInfoMsg],
	succSorter *extsort.Sorter[existSuccMsg],
	cfg Config,
) ([]gmodel.Edge, []gmodel.SwapResult, Stats, error) {
	var stats Stats

	seedSorter := extsort.New[depChainMsg](
		extsort.ComparatorFunc[depChainMsg](depChainLess),
		depChainCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(32),
		extsort.WithLogger(cfg.Logger))

	for eid, sids := range dc.chains {
		first := sids[0]
		if err := seedSorter.Push(depChainMsg{Sid: first, Eid: eid, Edge: edges[eid]}); err != nil {
			return nil, nil, stats, err
		}
	}
	if err := seedSorter.Sort(); err != nil {
		return nil, nil, stats, err
	}
	defer seedSorter.Close()

	forwardQ := extpq.New[depChainMsg](
		extpq.ComparatorFunc[depChainMsg](depChainLess),
		extpq.WithLogger(cfg.Logger))
	stream := merge.New[depChainMsg](forwardQ, seedSorter, extsort.ComparatorFunc[depChainMsg](depChainLess))

	infoPQ := extpq.New[existInfoMsg](
		extpq.ComparatorFunc[existInfoMsg](existInfoLess),
		extpq.WithLogger(cfg.Logger))
	infoStream := merge.New[existInfoMsg](infoPQ, infoSorter, extsort.ComparatorFunc[existInfoMsg](existInfoLess))
	defer infoSorter.Close()
	defer succSorter.Close()

	finalEdges := make(map[gmodel.EdgeID]gmodel.Edge)
	results := make([]gmodel.SwapResult, len(batch))

	for i, sw := range batch {
		sid := startSid + gmodel.SwapID(i)

		pending := make(map[gmodel.EdgeID]gmodel.Edge, 2)
		for !stream.Empty() {
			v, ok := stream.Peek()
			if !ok || v.Sid != sid {
				break
			}
			pending[v.Eid] = v.Edge
			stats.MessagesForwarded++
			if err := stream.Advance(); err != nil {
				return nil, nil, stats, err
			}
		}

		e0, ok0 := pending[sw.Eid0]
		e1, ok1 := pending[sw.Eid1]
		if !ok0 || !ok1 {
			return nil, nil, stats, gmodel.Invariantf(
				"tfp: swap %d missing dependency delivery for its edges", sid)
		}
		stats.EdgesTouched += 2

		new0, new1 := gmodel.SwapEdges(e0, e1, sw.Dir)
		loop := new0.IsLoop() || new1.IsLoop()

		infos := make(map[gmodel.Edge]bool, 2)
		for !infoStream.Empty() {
			v, ok := infoStream.Peek()
			if !ok || v.Sid != sid {
				break
			}
			infos[v.Edge] = v.Exists
			if err := infoStream.Advance(); err != nil {
				return nil, nil, stats, err
			}
		}

		var conflict [2]bool
		performed := false
		if !loop {
			dup := new0 == new1
			c0 := infos[new0] && new0 != e0 && new0 != e1
			c1 := infos[new1] && new1 != e0 && new1 != e1
			if dup {
				c0, c1 = true, true
			}
			conflict = [2]bool{c0, c1}
			performed = !c0 && !c1
		}

		final0, final1 := e0, e1
		resEdges := [2]gmodel.Edge{e0, e1}
		if performed {
			final0, final1 = new0, new1
			resEdges = [2]gmodel.Edge{new0, new1}
		}

		res := gmodel.SwapResult{
			Performed:        performed,
			Loop:             loop,
			Edges:            resEdges,
			ConflictDetected: conflict,
		}
		res.Normalize()
		results[sid-startSid] = res

		if err := deliverOrFinalize(stream, dc, sw.Eid0, sid, final0, finalEdges); err != nil {
			return nil, nil, stats, err
		}
		if err := deliverOrFinalize(stream, dc, sw.Eid1, sid, final1, finalEdges); err != nil {
			return nil, nil, stats, err
		}

		for !succSorter.Empty() {
			v, ok := succSorter.Peek()
			if !ok || v.Sid != sid {
				break
			}
			if _, err := succSorter.Pop(); err != nil {
				return nil, nil, stats, err
			}

			isNew := v.Edge == new0 || v.Edge == new1
			isOrig := v.Edge == e0 || v.Edge == e1
			var exists bool
			switch {
			case performed && isNew:
				exists = true
			case !performed && isOrig:
				exists = true
			case isOrig:
				exists = false
			default:
				exists = infos[v.Edge]
			}

			if err := infoStream.Push(existInfoMsg{Sid: v.NextSid, Edge: v.Edge, Exists: exists}); err != nil {
				return nil, nil, stats, err
			}
		}
	}

	out := make([]gmodel.Edge, len(edges))
	for eid := range edges {
		if dc.remains[eid] {
			out[eid] = edges[eid]
			continue
		}
		fe, ok := finalEdges[gmodel.EdgeID(eid)]
		if !ok {
			return nil, nil, stats, gmodel.Invariantf("tfp: edge %d touched but never finalized", eid)
		}
		out[eid] = fe
	}

	outSorter := extsort.New[gmodel.Edge](
		extsort.ComparatorFunc[gmodel.Edge](gmodel.Edge.Less),
		gmodel.EdgeCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(16),
		extsort.WithLogger(cfg.Logger))
	for _, e := range out {
		if err := outSorter.Push(e); err != nil {
			return nil, nil, stats, err
		}
	}
	if err := outSorter.Sort(); err != nil {
		return nil, nil, stats, err
	}
	defer outSorter.Close()

	sorted := make([]gmodel.Edge, 0, len(out))
	for !outSorter.Empty() {
		e, err := outSorter.Pop()
		if err != nil {
			return nil, nil, stats, err
		}
		sorted = append(sorted, e)
	}

	return sorted, results, stats, nil
}

// deliverOrFinalize forwards an edge's decided post-swap state to the next
// swap that will access it, or records it as the edge's final value for
// this sub-batch if no later swap needs it.
func deliverOrFinalize(stream *merge.Source[depChainMsg], dc *dependencyChains, eid gmodel.EdgeID, sid gmodel.SwapID, final gmodel.Edge, finalEdges map[gmodel.EdgeID]gmodel.Edge) error {
	if next, ok := dc.nextAccessor(eid, sid); ok {
		return stream.Push(depChainMsg{Sid: next, Eid: eid, Edge: final})
	}
	finalEdges[eid] = final
	return nil
}
