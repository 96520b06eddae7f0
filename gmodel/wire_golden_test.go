package gmodel_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/katalvlaran/oocgraph/gmodel"
)

// TestEdgeWireGolden pins the on-disk byte layout EdgeWriter produces: two
// little-endian uint64s per edge, in write order. Any change here is a wire
// format break for every edge-list file already on disk.
func TestEdgeWireGolden(t *testing.T) {
	edges := []gmodel.Edge{
		gmodel.NewEdge(0, 1),
		gmodel.NewEdge(2, 3),
		gmodel.NewEdge(4, 100),
	}

	var buf bytes.Buffer
	w := gmodel.NewEdgeWriter(&buf)
	for _, e := range edges {
		if err := w.Write(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t)
	g.Assert(t, "TestEdgeWireGolden", buf.Bytes())
}
