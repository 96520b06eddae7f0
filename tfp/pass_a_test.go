package tfp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/oocgraph/gmodel"
)

func TestBuildDependencyChainsGroupsByEdge(t *testing.T) {
	require := require.New(t)
	cfg := defaultConfig()
	cfg.Logger = zap.NewNop()

	batch := []gmodel.SwapDescriptor{
		{Eid0: 0, Eid1: 1},
		{Eid0: 0, Eid1: 2},
	}

	dc, err := buildDependencyChains(3, batch, 0, cfg)
	require.NoError(err)

	require.Equal([]gmodel.SwapID{0, 1}, dc.chains[0])
	require.Equal([]gmodel.SwapID{0}, dc.chains[1])
	require.Equal([]gmodel.SwapID{1}, dc.chains[2])
	require.False(dc.remains[0])
	require.False(dc.remains[1])
	require.False(dc.remains[2])

	first, ok := dc.firstAccessor(0)
	require.True(ok)
	require.Equal(gmodel.SwapID(0), first)

	next, ok := dc.nextAccessor(0, 0)
	require.True(ok)
	require.Equal(gmodel.SwapID(1), next)

	_, ok = dc.nextAccessor(1, 0)
	require.False(ok)
}

func TestBuildDependencyChainsMarksUntouchedEdges(t *testing.T) {
	require := require.New(t)
	cfg := defaultConfig()

	batch := []gmodel.SwapDescriptor{{Eid0: 0, Eid1: 1}}
	dc, err := buildDependencyChains(4, batch, 0, cfg)
	require.NoError(err)

	require.False(dc.remains[0])
	require.False(dc.remains[1])
	require.True(dc.remains[2])
	require.True(dc.remains[3])
}
