package extsort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/gmodel"
)

func edgeCmp() extsort.Comparator[gmodel.Edge] {
	return extsort.ComparatorFunc[gmodel.Edge](func(a, b gmodel.Edge) bool { return a.Less(b) })
}

func TestSorterStreamsInOrderSmall(t *testing.T) {
	s := extsort.New[gmodel.Edge](edgeCmp(), gmodel.EdgeCodec{})

	in := []gmodel.Edge{
		gmodel.NewEdge(5, 6),
		gmodel.NewEdge(1, 2),
		gmodel.NewEdge(3, 3),
		gmodel.NewEdge(0, 9),
	}
	for _, e := range in {
		require.NoError(t, s.Push(e))
	}
	require.NoError(t, s.Sort())
	defer s.Close()

	var out []gmodel.Edge
	for !s.Empty() {
		v, err := s.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}

	want := append([]gmodel.Edge(nil), in...)
	sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })
	require.Equal(t, want, out)
}

func TestSorterSpillsAcrossRuns(t *testing.T) {
	s := extsort.New[gmodel.Edge](edgeCmp(), gmodel.EdgeCodec{},
		extsort.WithMemoryBudget(64), extsort.WithElementSizeHint(16))

	rng := rand.New(rand.NewSource(42))
	const n = 500
	in := make([]gmodel.Edge, n)
	for i := range in {
		a := gmodel.Node(rng.Intn(1000))
		b := gmodel.Node(rng.Intn(1000))
		in[i] = gmodel.NewEdge(a, b)
		require.NoError(t, s.Push(in[i]))
	}
	require.NoError(t, s.Sort())
	defer s.Close()

	var out []gmodel.Edge
	for !s.Empty() {
		v, err := s.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	require.Len(t, out, n)
	for i := 1; i < len(out); i++ {
		require.False(t, out[i].Less(out[i-1]), "output must be non-decreasing at index %d", i)
	}
}

func TestSorterRewind(t *testing.T) {
	s := extsort.New[gmodel.Edge](edgeCmp(), gmodel.EdgeCodec{},
		extsort.WithMemoryBudget(64), extsort.WithElementSizeHint(16))

	for i := 0; i < 50; i++ {
		require.NoError(t, s.Push(gmodel.NewEdge(gmodel.Node(i), gmodel.Node(i+1))))
	}
	require.NoError(t, s.Sort())
	defer s.Close()

	var first []gmodel.Edge
	for !s.Empty() {
		v, err := s.Pop()
		require.NoError(t, err)
		first = append(first, v)
	}

	require.NoError(t, s.Rewind())
	var second []gmodel.Edge
	for !s.Empty() {
		v, err := s.Pop()
		require.NoError(t, err)
		second = append(second, v)
	}

	require.Equal(t, first, second)
}

func TestSorterPushAfterSortFails(t *testing.T) {
	s := extsort.New[gmodel.Edge](edgeCmp(), gmodel.EdgeCodec{})
	require.NoError(t, s.Push(gmodel.NewEdge(1, 2)))
	require.NoError(t, s.Sort())
	defer s.Close()

	err := s.Push(gmodel.NewEdge(3, 4))
	require.ErrorIs(t, err, gmodel.ErrInvariant)
}
