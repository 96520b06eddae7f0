package gmodel

import "fmt"

// NodeBits is the width of the node address space: nodes are drawn from
// [0, 2^NodeBits).
const NodeBits = 36

// NodeMask clears every bit above NodeBits.
const NodeMask uint64 = (1 << NodeBits) - 1

// Node is an unsigned node identifier in a 36-bit address space.
type Node uint64

// Valid reports whether n fits the 36-bit address space.
func (n Node) Valid() bool {
	return uint64(n) <= NodeMask
}

// EdgeID indexes into the current (sorted) edge list; since the edge list
// is always kept sorted, edge ids coincide with rank.
type EdgeID uint64

// Edge is an ordered pair of nodes with U <= V. U == V denotes a loop,
// which the simple-graph invariant forbids in any published edge list.
type Edge struct {
	U, V Node
}

// NewEdge returns the edge (min(a,b), max(a,b)).
func NewEdge(a, b Node) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

// IsLoop reports whether the edge connects a node to itself.
func (e Edge) IsLoop() bool {
	return e.U == e.V
}

// Less is the lexicographic order used to keep edge lists sorted.
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}
	return e.V < o.V
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// SwapID is the position of a swap request within a batch; it doubles as
// the forward-direction time stamp that every internal TFP message chain
// strictly increases along.
type SwapID uint64

// SwapDescriptor names two distinct edge ids to swap and a direction bit.
//
//	Dir == false: (u0,v0),(u1,v1) -> (u0,u1),(v0,v1)
//	Dir == true : (u0,v0),(u1,v1) -> (u0,v1),(v0,u1)
//
// Eid0 must be strictly less than Eid1; use NewSwapDescriptor to get this
// for free regardless of argument order.
type SwapDescriptor struct {
	Eid0, Eid1 EdgeID
	Dir        bool
}

// NewSwapDescriptor orders the two edge ids and returns the descriptor.
// Panics if e1 == e2: a swap must name two distinct edges.
func NewSwapDescriptor(e1, e2 EdgeID, dir bool) SwapDescriptor {
	if e1 == e2 {
		panic("gmodel: NewSwapDescriptor called with identical edge ids")
	}
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	return SwapDescriptor{Eid0: e1, Eid1: e2, Dir: dir}
}

// SwapResult reports the outcome of a single swap request.
type SwapResult struct {
	// Performed is true iff the swap was carried out.
	Performed bool
	// Loop is true iff at least one candidate new edge would have been a
	// self-loop; when true Performed is always false.
	Loop bool
	// Edges holds the post-state of the swap's two edges: the new pair if
	// Performed, otherwise the unchanged original pair.
	Edges [2]Edge
	// ConflictDetected[i] is true iff Edges-before-swap[i]'s replacement
	// already existed elsewhere in the graph, preventing the swap. Only
	// meaningful when the corresponding candidate edge is not a loop.
	ConflictDetected [2]bool
}

// Normalize orders the two result edges (and their paired conflict flags)
// so that Edges[0] <= Edges[1], after ordering each edge's own endpoints.
// Each conflict flag moves together with its edge.
func (r *SwapResult) Normalize() {
	r.Edges[0] = NewEdge(r.Edges[0].U, r.Edges[0].V)
	r.Edges[1] = NewEdge(r.Edges[1].U, r.Edges[1].V)

	if r.Edges[1].Less(r.Edges[0]) {
		r.Edges[0], r.Edges[1] = r.Edges[1], r.Edges[0]
		r.ConflictDetected[0], r.ConflictDetected[1] = r.ConflictDetected[1], r.ConflictDetected[0]
	}
}

// SwapEdges computes the two candidate post-swap edges for a pair of
// pre-swap edges and a direction bit, normalizing each to (min,max).
//
//	dir == false: yields (u1,u2) and (v1,v2) from (u1,v1),(u2,v2)
//	dir == true : yields (u1,v2) and (v1,u2)
func SwapEdges(e1, e2 Edge, dir bool) (Edge, Edge) {
	if !dir {
		return NewEdge(e1.U, e2.U), NewEdge(e1.V, e2.V)
	}
	return NewEdge(e1.U, e2.V), NewEdge(e1.V, e2.U)
}
