package gmodel_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oocgraph/gmodel"
)

func TestEdgeWireRoundTrip(t *testing.T) {
	edges := []gmodel.Edge{
		gmodel.NewEdge(0, 1),
		gmodel.NewEdge(2, 400),
		gmodel.NewEdge(7, 7),
	}

	var buf bytes.Buffer
	w := gmodel.NewEdgeWriter(&buf)
	for _, e := range edges {
		require.NoError(t, w.Write(e))
	}
	require.NoError(t, w.Flush())

	r := gmodel.NewEdgeReader(&buf)
	for _, want := range edges {
		got, err := r.Read()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := r.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestMaskRoundTrip(t *testing.T) {
	bits := []bool{true, false, false, true, true, true, true, true, false, true}

	var buf bytes.Buffer
	require.NoError(t, gmodel.WriteMask(&buf, bits))

	got, err := gmodel.ReadMask(&buf, len(bits))
	require.NoError(t, err)
	require.Equal(t, bits, got)
}

func TestMaskEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gmodel.WriteMask(&buf, nil))
	got, err := gmodel.ReadMask(&buf, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}
