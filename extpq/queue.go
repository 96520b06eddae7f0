package extpq

import (
	"container/heap"

	"go.uber.org/zap"

	"github.com/katalvlaran/oocgraph/gmodel"
)

// Comparator imposes the order Top/Pop report the minimum under.
type Comparator[T any] interface {
	Less(a, b T) bool
}

// ComparatorFunc adapts a plain function to a Comparator.
type ComparatorFunc[T any] func(a, b T) bool

// Less implements Comparator.
func (f ComparatorFunc[T]) Less(a, b T) bool { return f(a, b) }

const (
	// DefaultBlockCapacity bounds how many elements a Queue holds before
	// Push reports gmodel.ErrResourceExhausted, simulating the fixed-size
	// read/write block pool of the original stxxl priority queue.
	DefaultBlockCapacity = 1 << 20
)

type config struct {
	capacity int
	logger   *zap.Logger
}

// Option configures a Queue.
type Option func(*config)

// WithCapacity bounds the number of live elements, modeling the
// caller-supplied block-pool size of spec.md §4.1. Panics if cap <= 0.
func WithCapacity(cap int) Option {
	if cap <= 0 {
		panic("extpq: WithCapacity requires cap > 0")
	}
	return func(c *config) { c.capacity = cap }
}

// WithLogger attaches a debug logger, defaulting to a no-op.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("extpq: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

type pqHeap[T any] struct {
	items []T
	cmp   Comparator[T]
}

func (h *pqHeap[T]) Len() int           { return len(h.items) }
func (h *pqHeap[T]) Less(i, j int) bool { return h.cmp.Less(h.items[i], h.items[j]) }
func (h *pqHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *pqHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(T)) }
func (h *pqHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// Queue is the external priority queue primitive (C1): Push at any time,
// Top/Pop yield the minimum under cmp.
type Queue[T any] struct {
	h   *pqHeap[T]
	cfg config
}

// New constructs a Queue ordered by cmp.
func New[T any](cmp Comparator[T], opts ...Option) *Queue[T] {
	cfg := config{capacity: DefaultBlockCapacity, logger: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}
	return &Queue[T]{h: &pqHeap[T]{cmp: cmp}, cfg: cfg}
}

// Push inserts v. Returns gmodel.ErrResourceExhausted if doing so would
// exceed the queue's configured capacity.
func (q *Queue[T]) Push(v T) error {
	if q.h.Len() >= q.cfg.capacity {
		return gmodel.ResourceExhaustedf("extpq: queue at capacity %d", q.cfg.capacity)
	}
	heap.Push(q.h, v)
	return nil
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.h.Len() == 0 }

// Size returns the current number of live elements.
func (q *Queue[T]) Size() int { return q.h.Len() }

// Top returns the minimum element without removing it.
func (q *Queue[T]) Top() (T, bool) {
	if q.Empty() {
		var zero T
		return zero, false
	}
	return q.h.items[0], true
}

// Pop removes and returns the minimum element.
func (q *Queue[T]) Pop() (T, error) {
	if q.Empty() {
		var zero T
		return zero, gmodel.Invariantf("extpq: Pop called on empty queue")
	}
	return heap.Pop(q.h).(T), nil
}
