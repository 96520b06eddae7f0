package merge_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/extpq"
	"github.com/katalvlaran/oocgraph/extsort"
	"github.com/katalvlaran/oocgraph/merge"
)

type intCodec struct{}

func (intCodec) Encode(w io.Writer, v int) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func (intCodec) Decode(r io.Reader) (int, error) {
	b := make([]byte, 1)
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return int(b[0]), nil
}

type mergeCmp struct{}

func (mergeCmp) Less(a, b int) bool { return a < b }

func lessInt(a, b int) bool { return a < b }

func TestSourceMergesSorterAndPQ(t *testing.T) {
	sorter := extsort.New[int](extsort.ComparatorFunc[int](lessInt), intCodec{})
	for _, v := range []int{1, 3, 5, 7} {
		require.NoError(t, sorter.Push(v))
	}
	require.NoError(t, sorter.Sort())
	defer sorter.Close()

	q := extpq.New[int](extpq.ComparatorFunc[int](lessInt))
	require.NoError(t, q.Push(4))
	require.NoError(t, q.Push(6))

	m := merge.New[int](q, sorter, mergeCmp{})

	var out []int
	var srcs []merge.SourceType
	for !m.Empty() {
		v, ok := m.Peek()
		require.True(t, ok)
		out = append(out, v)
		srcs = append(srcs, m.Source())
		require.NoError(t, m.Advance())
	}

	require.Equal(t, []int{1, 3, 4, 5, 6, 7}, out)
	require.Equal(t, []merge.SourceType{
		merge.SrcSorter, merge.SrcSorter, merge.SrcPQ,
		merge.SrcSorter, merge.SrcPQ, merge.SrcSorter,
	}, srcs)
}

func TestSourcePushRefreshesHead(t *testing.T) {
	sorter := extsort.New[int](extsort.ComparatorFunc[int](lessInt), intCodec{})
	require.NoError(t, sorter.Push(10))
	require.NoError(t, sorter.Sort())
	defer sorter.Close()

	q := extpq.New[int](extpq.ComparatorFunc[int](lessInt))
	m := merge.New[int](q, sorter, mergeCmp{})

	v, ok := m.Peek()
	require.True(t, ok)
	require.Equal(t, 10, v)

	require.NoError(t, m.Push(2))
	v, ok = m.Peek()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, merge.SrcPQ, m.Source())
}
