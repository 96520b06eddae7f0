package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/fixtures"
	"github.com/katalvlaran/oocgraph/gmodel"
)

func TestCycle(t *testing.T) {
	require := require.New(t)

	edges, err := fixtures.Cycle(4)
	require.NoError(err)
	require.Len(edges, 4)

	deg := make(map[gmodel.Node]int)
	for _, e := range edges {
		require.False(e.IsLoop())
		deg[e.U]++
		deg[e.V]++
	}
	for n := gmodel.Node(0); n < 4; n++ {
		require.Equal(2, deg[n])
	}

	_, err = fixtures.Cycle(2)
	require.ErrorIs(err, fixtures.ErrTooFewNodes)
}

func TestComplete(t *testing.T) {
	require := require.New(t)

	edges, err := fixtures.Complete(4)
	require.NoError(err)
	require.Len(edges, 6)

	seen := make(map[gmodel.Edge]bool)
	for _, e := range edges {
		require.False(e.IsLoop())
		require.False(seen[e])
		seen[e] = true
	}
}

func TestRandomRegularDegreeSequence(t *testing.T) {
	require := require.New(t)

	edges, err := fixtures.RandomRegular(6, 3, fixtures.WithSeed(7))
	require.NoError(err)
	require.Len(edges, 9)

	deg := make(map[gmodel.Node]int)
	seen := make(map[gmodel.Edge]bool)
	for _, e := range edges {
		require.False(e.IsLoop())
		require.False(seen[e])
		seen[e] = true
		deg[e.U]++
		deg[e.V]++
	}
	for n := gmodel.Node(0); n < 6; n++ {
		require.Equal(3, deg[n])
	}
}

func TestRandomRegularRejectsOddTotalDegree(t *testing.T) {
	_, err := fixtures.RandomRegular(5, 3)
	require.Error(t, err)
	require.ErrorIs(t, err, fixtures.ErrInvalidDegree)
}

func TestPlaceholders(t *testing.T) {
	edges, err := fixtures.Cycle(4)
	require.NoError(t, err)

	ph := fixtures.Placeholders(edges)
	require.Len(t, ph, 4)
	require.Equal(t, uint64(edges[0].U), ph[0].A)
	require.Equal(t, uint64(edges[0].V), ph[0].B)
}
