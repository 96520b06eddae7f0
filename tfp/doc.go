// Package tfp implements the Time-Forward Processing edge-swap engine: given
// a sorted simple-graph edge list and a batch of edge-swap requests with
// inter-dependencies, it decides for each swap, in increasing swap-id order,
// whether performing it would create a self-loop or a duplicate edge, and
// produces the updated edge list plus a per-swap debug result stream.
//
// Engine.Run drives four passes per sub-batch: dependency-chain
// construction (pass_a.go), speculative candidate propagation and
// existence-query generation (pass_b.go), existence resolution via a
// sorted merge-scan of the edge list (pass_c.go), and swap decision plus
// final-state forwarding (pass_d.go). The sub-batch iteration loop in
// engine.go feeds one sub-batch's output edge list into the next as input.
package tfp
