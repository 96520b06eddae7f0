package tfp

import (
	"sort"

	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
)

// dependencyChains maps each edge touched by the sub-batch to the ascending
// list of swap ids that access it, and reports which edges are untouched.
type dependencyChains struct {
	chains  map[gmodel.EdgeID][]gmodel.SwapID
	remains []bool // len(edges); true where untouched by this sub-batch
}

// buildDependencyChains implements Pass A (spec.md §4.4): it streams every
// swap's two edge accesses through an external sorter keyed by (eid,sid) so
// that, once sorted, each edge's accessors fall out already grouped and
// ordered — the chain a later pass walks to know who-forwards-to-whom.
func buildDependencyChains(numEdges int, batch []gmodel.SwapDescriptor, startSid gmodel.SwapID, cfg Config) (*dependencyChains, error) {
	sorter := extsort.New[accessMsg](
		extsort.ComparatorFunc[accessMsg](accessLess),
		accessCodec{},
		extsort.WithMemoryBudget(cfg.MemoryBudget),
		extsort.WithElementSizeHint(16),
		extsort.WithLogger(cfg.Logger))
	defer sorter.Close()

	for i, sw := range batch {
		sid := startSid + gmodel.SwapID(i)
		if err := sorter.Push(accessMsg{Sid: sid, Eid: sw.Eid0}); err != nil {
			return nil, err
		}
		if err := sorter.Push(accessMsg{Sid: sid, Eid: sw.Eid1}); err != nil {
			return nil, err
		}
	}
	if err := sorter.Sort(); err != nil {
		return nil, err
	}

	dc := &dependencyChains{
		chains:  make(map[gmodel.EdgeID][]gmodel.SwapID),
		remains: make([]bool, numEdges),
	}
	for i := range dc.remains {
		dc.remains[i] = true
	}

	for !sorter.Empty() {
		m, err := sorter.Pop()
		if err != nil {
			return nil, err
		}
		dc.chains[m.Eid] = append(dc.chains[m.Eid], m.Sid)
		if int(m.Eid) < numEdges {
			dc.remains[m.Eid] = false
		}
	}

	// Pop already streams each eid's group in ascending Sid order (the
	// sorter is keyed (Eid,Sid)), but guard the invariant explicitly since
	// later passes depend on it absolutely.
	for eid, sids := range dc.chains {
		if !sort.SliceIsSorted(sids, func(i, j int) bool { return sids[i] < sids[j] }) {
			return nil, gmodel.Invariantf("tfp: dependency chain for edge %d is not sid-ordered", eid)
		}
	}

	return dc, nil
}

// firstAccessor reports the earliest swap id that touches eid, if any.
func (dc *dependencyChains) firstAccessor(eid gmodel.EdgeID) (gmodel.SwapID, bool) {
	sids := dc.chains[eid]
	if len(sids) == 0 {
		return 0, false
	}
	return sids[0], true
}

// nextAccessor reports the swap id that touches eid immediately after sid,
// if any. Used by passes B and D to decide whether a swap's outcome must
// be forwarded to a successor or flushed to the edge-update stream.
func (dc *dependencyChains) nextAccessor(eid gmodel.EdgeID, sid gmodel.SwapID) (gmodel.SwapID, bool) {
	sids := dc.chains[eid]
	for i, s := range sids {
		if s == sid && i+1 < len(sids) {
			return sids[i+1], true
		}
	}
	return 0, false
}
