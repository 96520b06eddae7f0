package cm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/cm"
	"github.com/katalvlaran/oocgraph/gmodel"
)

func degreeSequence(edges []gmodel.Edge) map[gmodel.Node]int {
	deg := make(map[gmodel.Node]int)
	for _, e := range edges {
		deg[e.U]++
		deg[e.V]++
	}
	return deg
}

func drainSorted(t *testing.T, s *require.Assertions, edges []cm.PlaceholderEdge, cfg cm.Config) []gmodel.Edge {
	sorter, err := cm.Generate(edges, cfg)
	s.NoError(err)
	defer sorter.Close()

	var out []gmodel.Edge
	for !sorter.Empty() {
		e, err := sorter.Pop()
		s.NoError(err)
		out = append(out, e)
	}
	return out
}

func TestGeneratePreservesDegreeSequenceFourCycle(t *testing.T) {
	require := require.New(t)

	placeholders := []cm.PlaceholderEdge{
		{A: 0, B: 1},
		{A: 1, B: 2},
		{A: 2, B: 3},
		{A: 3, B: 0},
	}
	cfg := cm.Config{Seed: 1, NodeUpperBound: 4}

	out := drainSorted(t, require, placeholders, cfg)
	require.Len(out, 4)

	deg := degreeSequence(out)
	require.Len(deg, 4)
	for n := gmodel.Node(0); n < 4; n++ {
		require.Equal(2, deg[n], "node %d degree", n)
	}

	for i := 1; i < len(out); i++ {
		require.True(out[i-1].Less(out[i]) || out[i-1] == out[i])
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	require := require.New(t)

	placeholders := []cm.PlaceholderEdge{
		{A: 0, B: 1},
		{A: 1, B: 2},
		{A: 2, B: 3},
		{A: 3, B: 0},
	}
	cfg := cm.Config{Seed: 42, NodeUpperBound: 4}

	first := drainSorted(t, require, placeholders, cfg)
	second := drainSorted(t, require, placeholders, cfg)
	require.Equal(first, second)
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	_, err := cm.Generate(nil, cm.Config{NodeUpperBound: 4})
	require.Error(t, err)
	require.ErrorIs(t, err, gmodel.ErrInvalidInput)
}

func TestGenerateWidensHighDegreeNodes(t *testing.T) {
	require := require.New(t)

	placeholders := []cm.PlaceholderEdge{
		{A: 0, B: 10}, {A: 0, B: 11}, {A: 0, B: 12},
	}
	cfg := cm.Config{Seed: 7, NodeUpperBound: 10, NodesAboveThreshold: 1}

	out := drainSorted(t, require, placeholders, cfg)
	require.Len(out, 3)
	for _, e := range out {
		require.True(uint64(e.U) != 0 || uint64(e.V) != 0,
			"widened node 0 must not collapse back to the literal id 0 on both sides of every edge")
	}
}

func TestGenerateNaivePreservesDegreeSequence(t *testing.T) {
	require := require.New(t)

	placeholders := []cm.PlaceholderEdge{
		{A: 0, B: 1},
		{A: 1, B: 2},
		{A: 2, B: 3},
		{A: 3, B: 0},
	}

	out := cm.GenerateNaive(placeholders, 9)
	require.Len(t, out, 4)

	deg := degreeSequence(out)
	require.Len(t, deg, 4)
	for n := gmodel.Node(0); n < 4; n++ {
		require.Equal(t, 2, deg[n], "node %d degree", n)
	}
}
