package fixtures

import (
	"github.com/katalvlaran/oocgraph/cm"
	"github.com/katalvlaran/oocgraph/gmodel"
)

// Placeholders converts an edge list into the placeholder-edge shape CM
// consumes, letting any fixture here double as CM input in tests and the
// demo path.
func Placeholders(edges []gmodel.Edge) []cm.PlaceholderEdge {
	out := make([]cm.PlaceholderEdge, len(edges))
	for i, e := range edges {
		out[i] = cm.PlaceholderEdge{A: uint64(e.U), B: uint64(e.V)}
	}
	return out
}
