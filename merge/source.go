package merge

import (
	"github.com/katalvlaran/oocgraph/extpq"
	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
)

// Comparator imposes the order Source merges by. Any extsort.Comparator or
// extpq.Comparator already satisfies this, since all three share the same
// single-method shape.
type Comparator[T any] interface {
	Less(a, b T) bool
}

// SourceType tags which underlying source the current head came from.
type SourceType int

const (
	// SrcPQ means the current head came from the priority queue.
	SrcPQ SourceType = iota
	// SrcSorter means the current head came from the sorter.
	SrcSorter
)

// Source couples a *extsort.Sorter[T] (expected to already be in its
// stream phase) and a *extpq.Queue[T] under cmp, yielding the smaller of
// the two heads at each step.
type Source[T any] struct {
	pq     *extpq.Queue[T]
	sorter *extsort.Sorter[T]
	cmp    Comparator[T]

	cur    T
	curSrc SourceType
	valid  bool
}

// New constructs a Source over pq and sorter, both ordered by cmp, and
// primes the initial head.
func New[T any](pq *extpq.Queue[T], sorter *extsort.Sorter[T], cmp Comparator[T]) *Source[T] {
	m := &Source[T]{pq: pq, sorter: sorter, cmp: cmp}
	m.Update()
	return m
}

// Update recomputes the cached head. Call after pushing into the queue
// through any path other than Push, since Peek/Source cache the head.
func (m *Source[T]) Update() {
	if m.Empty() {
		m.valid = false
		return
	}
	m.fetch()
}

func (m *Source[T]) fetch() {
	pqEmpty := m.pq.Empty()
	sortEmpty := m.sorter.Empty()

	switch {
	case pqEmpty:
		v, _ := m.sorter.Peek()
		m.cur, m.curSrc, m.valid = v, SrcSorter, true
	case sortEmpty:
		v, _ := m.pq.Top()
		m.cur, m.curSrc, m.valid = v, SrcPQ, true
	default:
		pqTop, _ := m.pq.Top()
		sortHead, _ := m.sorter.Peek()
		if m.cmp.Less(pqTop, sortHead) {
			m.cur, m.curSrc, m.valid = pqTop, SrcPQ, true
		} else {
			m.cur, m.curSrc, m.valid = sortHead, SrcSorter, true
		}
	}
}

// Push inserts v into the queue half of the source and refreshes the
// cached head; equivalent to calling Queue.Push followed by Update.
func (m *Source[T]) Push(v T) error {
	if err := m.pq.Push(v); err != nil {
		return err
	}
	m.fetch()
	return nil
}

// Empty reports whether both the queue and the sorter are exhausted.
func (m *Source[T]) Empty() bool {
	return m.pq.Empty() && m.sorter.Empty()
}

// Peek returns the smallest remaining element without consuming it.
func (m *Source[T]) Peek() (T, bool) {
	if !m.valid {
		var zero T
		return zero, false
	}
	return m.cur, true
}

// Source reports which underlying source the current head came from.
func (m *Source[T]) Source() SourceType {
	return m.curSrc
}

// Advance removes the current head from its source and refreshes the
// cached head.
func (m *Source[T]) Advance() error {
	if !m.valid {
		return gmodel.Invariantf("merge: Advance called on empty source")
	}
	switch m.curSrc {
	case SrcPQ:
		if _, err := m.pq.Pop(); err != nil {
			return err
		}
	default:
		if _, err := m.sorter.Pop(); err != nil {
			return err
		}
	}
	m.Update()
	return nil
}
