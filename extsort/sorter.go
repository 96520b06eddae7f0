package extsort

import (
	"container/heap"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/oocgraph/gmodel"
)

type phase int

const (
	phaseInsert phase = iota
	phaseSorted
)

// mergeSource is one input to the k-way merge: either a spilled run on
// disk, or the tail of elements still held in memory.
type mergeSource[T any] interface {
	next() (T, bool, error)
	rewind() error
	close() error
}

type runSource[T any] struct{ r *runReader[T] }

func (s *runSource[T]) next() (T, bool, error) {
	v, err := s.r.next()
	if err == io.EOF {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}
func (s *runSource[T]) rewind() error { return s.r.rewind() }
func (s *runSource[T]) close() error  { _ = s.r.close(); return s.r.remove() }

type sliceSource[T any] struct {
	vals []T
	i    int
}

func (s *sliceSource[T]) next() (T, bool, error) {
	if s.i >= len(s.vals) {
		var zero T
		return zero, false, nil
	}
	v := s.vals[s.i]
	s.i++
	return v, true, nil
}
func (s *sliceSource[T]) rewind() error { s.i = 0; return nil }
func (s *sliceSource[T]) close() error  { return nil }

type heapItem[T any] struct {
	val T
	src mergeSource[T]
}

type sortHeap[T any] struct {
	items []heapItem[T]
	cmp   Comparator[T]
}

func (h *sortHeap[T]) Len() int            { return len(h.items) }
func (h *sortHeap[T]) Less(i, j int) bool  { return h.cmp.Less(h.items[i].val, h.items[j].val) }
func (h *sortHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *sortHeap[T]) Push(x interface{})  { h.items = append(h.items, x.(heapItem[T])) }
func (h *sortHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// Sorter is the external-memory sorter primitive (C1): unbounded Push,
// a single Sort, then a forward, optionally-rewindable Peek/Pop stream.
// Its working set is bounded by its configured memory budget regardless
// of how many elements pass through it.
type Sorter[T any] struct {
	cmp   Comparator[T]
	codec Codec[T]
	cfg   config

	phase    phase
	buf      []T
	runPaths []string
	count    int

	sources []mergeSource[T]
	h       *sortHeap[T]
}

// New constructs a Sorter over T, comparing with cmp and, when spilling is
// needed, (de)serializing with codec.
func New[T any](cmp Comparator[T], codec Codec[T], opts ...Option) *Sorter[T] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Sorter[T]{cmp: cmp, codec: codec, cfg: cfg, phase: phaseInsert}
}

// Push buffers v for sorting. Valid only before Sort is called.
func (s *Sorter[T]) Push(v T) error {
	if s.phase != phaseInsert {
		return gmodel.Invariantf("extsort: Push called after Sort")
	}
	s.buf = append(s.buf, v)
	s.count++
	if len(s.buf)*s.cfg.elementSize >= s.cfg.memoryBudget {
		if err := s.spill(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of elements ever pushed (O(1), tracked
// incrementally; valid in any phase).
func (s *Sorter[T]) Len() int { return s.count }

func (s *Sorter[T]) spill() error {
	sort.Slice(s.buf, func(i, j int) bool { return s.cmp.Less(s.buf[i], s.buf[j]) })

	rw, err := newRunWriter(s.cfg.tempDir, s.cfg.compress, s.codec)
	if err != nil {
		return err
	}
	for _, v := range s.buf {
		if err := rw.write(v); err != nil {
			return err
		}
	}
	path, err := rw.close()
	if err != nil {
		return err
	}
	s.runPaths = append(s.runPaths, path)
	s.buf = s.buf[:0]
	s.cfg.logger.Debug("extsort: spilled run", zap.String("path", path), zap.Int("runs", len(s.runPaths)))
	return nil
}

// Sort closes the insert phase, sorting any remaining buffered elements
// and merging them against spilled runs (if any) to begin the stream
// phase. Opening spilled runs happens concurrently via errgroup, since
// each is an independent I/O wait; the call itself is synchronous.
func (s *Sorter[T]) Sort() error {
	if s.phase != phaseInsert {
		return gmodel.Invariantf("extsort: Sort called twice")
	}
	sort.Slice(s.buf, func(i, j int) bool { return s.cmp.Less(s.buf[i], s.buf[j]) })
	s.phase = phaseSorted

	sources := make([]mergeSource[T], 0, len(s.runPaths)+1)
	if len(s.buf) > 0 {
		sources = append(sources, &sliceSource[T]{vals: s.buf})
	}

	if len(s.runPaths) > 0 {
		readers := make([]*runReader[T], len(s.runPaths))
		g := new(errgroup.Group)
		for i, p := range s.runPaths {
			i, p := i, p
			g.Go(func() error {
				r, err := openRunReader(p, s.cfg.compress, s.codec)
				if err != nil {
					return err
				}
				readers[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, r := range readers {
			sources = append(sources, &runSource[T]{r: r})
		}
	}

	s.sources = sources
	return s.primeHeap()
}

func (s *Sorter[T]) primeHeap() error {
	h := &sortHeap[T]{cmp: s.cmp}
	for _, src := range s.sources {
		v, ok, err := src.next()
		if err != nil {
			return err
		}
		if ok {
			h.items = append(h.items, heapItem[T]{val: v, src: src})
		}
	}
	heap.Init(h)
	s.h = h
	return nil
}

// Empty reports whether the stream is exhausted. Valid only in the stream
// phase (after Sort).
func (s *Sorter[T]) Empty() bool {
	return s.h == nil || s.h.Len() == 0
}

// Peek returns the smallest remaining element without consuming it.
func (s *Sorter[T]) Peek() (T, bool) {
	if s.Empty() {
		var zero T
		return zero, false
	}
	return s.h.items[0].val, true
}

// Pop consumes and returns the smallest remaining element.
func (s *Sorter[T]) Pop() (T, error) {
	if s.Empty() {
		var zero T
		return zero, gmodel.Invariantf("extsort: Pop called on empty sorter")
	}
	top := heap.Pop(s.h).(heapItem[T])
	v, ok, err := top.src.next()
	if err != nil {
		return top.val, err
	}
	if ok {
		heap.Push(s.h, heapItem[T]{val: v, src: top.src})
	}
	return top.val, nil
}

// Rewind returns the stream to the start without re-sorting, so a single
// Sort can back multiple passes over the same data (spec §4.1).
func (s *Sorter[T]) Rewind() error {
	if s.phase != phaseSorted {
		return gmodel.Invariantf("extsort: Rewind called before Sort")
	}
	for _, src := range s.sources {
		if err := src.rewind(); err != nil {
			return err
		}
	}
	return s.primeHeap()
}

// Close releases any spilled-run temp files. Safe to call multiple times.
func (s *Sorter[T]) Close() error {
	var firstErr error
	if s.sources == nil {
		// Runs spilled before Sort opened them have no merge source yet.
		for _, p := range s.runPaths {
			if err := os.Remove(p); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	for _, src := range s.sources {
		if err := src.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.sources = nil
	s.h = nil
	s.runPaths = nil
	return firstErr
}
