package tfp

import (
	"sort"

	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
)

// resolveExistence implements Pass C (spec.md §4.6): a single merge-scan of
// Pass B's existence-request stream (sorted by edge value) against a
// sorted, externally-backed reader over the current edge list, answering
// every distinct requested edge with one linear advance rather than a
// random lookup into a graph that may not fit in RAM.
//
// Requests for the same edge value arrive together (reqSorter is sorted by
// edge first). Within a group, the smallest swap id that ever asked about
// the edge is told the existence bit; every swap id up to the last one
// that asked as a genuine candidate (ForwardOnly == false) is chained to
// its successor in the group via an existence-successor message, so Pass D
// can relay the answer forward without a second scan. A group with no
// ForwardOnly == false request at all needs no answer — nothing in the
// batch treats that edge as a hypothetical outcome.
func resolveExistence(edges []gmodel.Edge, reqSorter *extsort.Sorter[existReqMsg], cfg Config) (*extsort.Sorter[existInfoMsg], *extsort.Sorter[existSuccMsg], error) {
	defer reqSorter.Close()

	edgeReader := extsort.New[gmodel.Edge](
		extsort.ComparatorFunc[gmodel.Edge](gmodel.Edge.Less),
		gmodel.EdgeCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(16),
		extsort.WithLogger(cfg.Logger))
	for _, e := range edges {
		if err := edgeReader.Push(e); err != nil {
			return nil, nil, err
		}
	}
	if err := edgeReader.Sort(); err != nil {
		return nil, nil, err
	}
	defer edgeReader.Close()

	infoSorter := extsort.New[existInfoMsg](
		extsort.ComparatorFunc[existInfoMsg](existInfoLess),
		existInfoCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(25),
		extsort.WithLogger(cfg.Logger))
	succSorter := extsort.New[existSuccMsg](
		extsort.ComparatorFunc[existSuccMsg](existSuccLess),
		existSuccCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(32),
		extsort.WithLogger(cfg.Logger))

	for !reqSorter.Empty() {
		head, ok := reqSorter.Peek()
		if !ok {
			break
		}
		edge := head.Edge

		// sid -> "every request this sid made for edge was ForwardOnly".
		bySid := make(map[gmodel.SwapID]bool)
		for !reqSorter.Empty() {
			v, ok := reqSorter.Peek()
			if !ok || v.Edge != edge {
				break
			}
			if existing, seen := bySid[v.Sid]; !seen {
				bySid[v.Sid] = v.ForwardOnly
			} else {
				bySid[v.Sid] = existing && v.ForwardOnly
			}
			if _, err := reqSorter.Pop(); err != nil {
				return nil, nil, err
			}
		}

		exists := false
		for !edgeReader.Empty() {
			v, ok := edgeReader.Peek()
			if !ok || edge.Less(v) {
				break
			}
			exists = v == edge
			if _, err := edgeReader.Pop(); err != nil {
				return nil, nil, err
			}
		}

		sids := make([]gmodel.SwapID, 0, len(bySid))
		for sid := range bySid {
			sids = append(sids, sid)
		}
		sort.Slice(sids, func(i, j int) bool { return sids[i] < sids[j] })

		lastTarget := -1
		for i, sid := range sids {
			if !bySid[sid] {
				lastTarget = i
			}
		}
		if lastTarget < 0 {
			continue // nobody in this group ever asked as a genuine candidate
		}

		if err := infoSorter.Push(existInfoMsg{Sid: sids[0], Edge: edge, Exists: exists}); err != nil {
			return nil, nil, err
		}
		for i := 0; i < lastTarget; i++ {
			if err := succSorter.Push(existSuccMsg{Sid: sids[i], Edge: edge, NextSid: sids[i+1]}); err != nil {
				return nil, nil, err
			}
		}
	}

	if err := infoSorter.Sort(); err != nil {
		return nil, nil, err
	}
	if err := succSorter.Sort(); err != nil {
		return nil, nil, err
	}
	return infoSorter, succSorter, nil
}
