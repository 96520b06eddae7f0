package extpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/extpq"
	"github.com/katalvlaran/oocgraph/gmodel"
)

func intCmp() extpq.Comparator[int] {
	return extpq.ComparatorFunc[int](func(a, b int) bool { return a < b })
}

func TestQueuePopsInOrder(t *testing.T) {
	q := extpq.New[int](intCmp())
	for _, v := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, q.Push(v))
	}
	var out []int
	for !q.Empty() {
		v, err := q.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, out)
}

func TestQueueTopDoesNotRemove(t *testing.T) {
	q := extpq.New[int](intCmp())
	require.NoError(t, q.Push(10))
	require.NoError(t, q.Push(3))
	top, ok := q.Top()
	require.True(t, ok)
	require.Equal(t, 3, top)
	require.Equal(t, 2, q.Size())
}

func TestQueueCapacityExhausted(t *testing.T) {
	q := extpq.New[int](intCmp(), extpq.WithCapacity(2))
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	err := q.Push(3)
	require.ErrorIs(t, err, gmodel.ErrResourceExhausted)
}

func TestQueuePopEmptyIsInvariant(t *testing.T) {
	q := extpq.New[int](intCmp())
	_, err := q.Pop()
	require.ErrorIs(t, err, gmodel.ErrInvariant)
}
