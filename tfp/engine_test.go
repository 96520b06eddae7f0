package tfp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/gmodel"
	"github.com/katalvlaran/oocgraph/tfp"
)

func e(u, v uint64) gmodel.Edge { return gmodel.NewEdge(gmodel.Node(u), gmodel.Node(v)) }

func TestRunBasicSwapDirFalse(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3)}
	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1, Dir: false}}

	res, err := tfp.Run(edges, batch)
	require.NoError(err)
	require.Equal([]gmodel.Edge{e(0, 2), e(1, 3)}, res.Edges)
	require.Len(res.Results, 1)
	require.True(res.Results[0].Performed)
	require.False(res.Results[0].Loop)
	require.Equal([2]bool{false, false}, res.Results[0].ConflictDetected)
}

func TestRunBasicSwapDirTrue(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3)}
	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1, Dir: true}}

	res, err := tfp.Run(edges, batch)
	require.NoError(err)
	require.Equal([]gmodel.Edge{e(0, 3), e(1, 2)}, res.Edges)
	require.True(res.Results[0].Performed)
}

func TestRunRejectsLoop(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(0, 2)}
	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1, Dir: false}}

	res, err := tfp.Run(edges, batch)
	require.NoError(err)
	require.Equal(edges, res.Edges)
	require.False(res.Results[0].Performed)
	require.True(res.Results[0].Loop)
}

func TestRunRejectsConflict(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3), e(0, 2)}
	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1, Dir: false}}

	res, err := tfp.Run(edges, batch)
	require.NoError(err)
	require.Equal([]gmodel.Edge{e(0, 1), e(0, 2), e(2, 3)}, res.Edges)
	require.False(res.Results[0].Performed)
	require.True(res.Results[0].ConflictDetected[0] || res.Results[0].ConflictDetected[1])
}

func TestRunChainedTwoSwapBatch(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3), e(4, 5)}
	batch := []gmodel.SwapDescriptor{
		{Eid0: 0, Eid1: 1, Dir: false},
		{Eid0: 0, Eid1: 2, Dir: false},
	}

	res, err := tfp.Run(edges, batch)
	require.NoError(err)
	require.Equal([]gmodel.Edge{e(0, 4), e(1, 3), e(2, 5)}, res.Edges)
	require.True(res.Results[0].Performed)
	require.True(res.Results[1].Performed)
}

func TestRunEmptyBatchIsIdempotent(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3), e(4, 5)}

	res, err := tfp.Run(edges, nil)
	require.NoError(err)
	require.Equal(edges, res.Edges)
	require.Empty(res.Results)
}

func TestRunRoundTripInverseRestoresOriginal(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3)}
	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1, Dir: false}}

	forward, err := tfp.Run(edges, batch)
	require.NoError(err)
	require.True(forward.Results[0].Performed)

	inverseBatch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1, Dir: false}}
	back, err := tfp.Run(forward.Edges, inverseBatch)
	require.NoError(err)
	require.True(back.Results[0].Performed)
	require.Equal(edges, back.Edges)
}

func TestRunRejectsSameEdgeTwice(t *testing.T) {
	edges := []gmodel.Edge{e(0, 1), e(2, 3)}
	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 0}}

	_, err := tfp.Run(edges, batch)
	require.Error(t, err)
	require.ErrorIs(t, err, gmodel.ErrInvalidInput)
}

func TestRunRejectsEmptyEdgeList(t *testing.T) {
	_, err := tfp.Run(nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, gmodel.ErrInvalidInput)
}

func TestRunOutputStaysSortedLoopAndDuplicateFree(t *testing.T) {
	require := require.New(t)
	edges := []gmodel.Edge{e(0, 1), e(2, 3), e(4, 5), e(6, 7)}
	batch := []gmodel.SwapDescriptor{
		{Eid0: 0, Eid1: 1, Dir: false},
		{Eid0: 2, Eid1: 3, Dir: true},
	}

	res, err := tfp.Run(edges, batch)
	require.NoError(err)

	seen := make(map[gmodel.Edge]bool, len(res.Edges))
	for i, edge := range res.Edges {
		require.False(edge.IsLoop())
		require.False(seen[edge], "duplicate edge %v", edge)
		seen[edge] = true
		if i > 0 {
			require.True(res.Edges[i-1].Less(edge))
		}
	}
}
