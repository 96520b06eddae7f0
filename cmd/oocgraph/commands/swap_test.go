package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/gmodel"
)

func TestEdgeListRoundTrip(t *testing.T) {
	require := require.New(t)

	edges := []gmodel.Edge{
		gmodel.NewEdge(0, 1),
		gmodel.NewEdge(1, 2),
		gmodel.NewEdge(2, 3),
	}

	path := filepath.Join(t.TempDir(), "edges.bin")
	require.NoError(writeEdgeList(path, edges))

	got, err := readEdgeList(path)
	require.NoError(err)
	require.Equal(edges, got)
}

func TestReadSwapBatchParsesYAML(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "swaps.yaml")
	const doc = `swaps:
  - eid0: 0
    eid1: 1
    dir: false
  - eid0: 2
    eid1: 0
    dir: true
`
	require.NoError(os.WriteFile(path, []byte(doc), 0o644))

	batch, err := readSwapBatch(path)
	require.NoError(err)
	require.Len(batch, 2)
	require.Equal(gmodel.NewSwapDescriptor(0, 1, false), batch[0])
	require.Equal(gmodel.NewSwapDescriptor(2, 0, true), batch[1])
}

func TestReadSwapBatchRejectsSelfSwap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swaps.yaml")
	const doc = `swaps:
  - eid0: 3
    eid1: 3
    dir: false
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := readSwapBatch(path)
	require.Error(t, err)
}

func TestWriteResultsProducesYAML(t *testing.T) {
	require := require.New(t)

	results := []gmodel.SwapResult{
		{
			Performed: true,
			Edges:     [2]gmodel.Edge{gmodel.NewEdge(0, 2), gmodel.NewEdge(1, 3)},
		},
	}
	path := filepath.Join(t.TempDir(), "results.yaml")
	require.NoError(writeResults(path, results))

	raw, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(raw), "performed: true")
}
