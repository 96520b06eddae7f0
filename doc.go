// Package oocgraph is an out-of-core graph materializer and edge-swap
// engine — generate very large graphs from a degree sequence, then
// randomize them through batched edge swaps, with the sorting and message
// passing of both done by external-memory sorters that spill to disk.
//
// 🚀 What is oocgraph?
//
//	A streaming, external-memory toolkit that brings together:
//		• External primitives: a byte-budgeted run-spilling sorter and a
//		  bounded-block priority queue, the building blocks everything
//		  else is layered on
//		• A merged-source iterator coupling one sorter and one priority
//		  queue under a shared comparator
//		• The Configuration Model: a CRC-hashed half-edge randomizer that
//		  realizes a pseudo-random edge list from a degree sequence
//		• Time-Forward Processing: a dependency-chained edge-swap decider
//		  that applies a batch of swap requests in strictly increasing
//		  swap-id order
//
// ✨ Why choose oocgraph?
//
//   - Sorters are bounded by an explicit memory budget and spill to disk
//     past it; cm.Generate and tfp.Run take their input as an in-memory
//     slice, and tfp.Run also returns its updated edge list as one
//   - Deterministic — same seed, same input, same output
//   - Pure Go — no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	gmodel/       — shared node/edge/swap types, sentinel errors, wire codec
//	extsort/      — external-memory sorter (insert, sort, stream)
//	extpq/        — bounded-block external priority queue
//	merge/        — merged-source iterator over a sorter and a priority queue
//	cm/           — Configuration Model half-edge randomizer
//	tfp/          — Time-Forward Processing edge-swap engine
//	fixtures/     — small deterministic degree-sequence generators for tests
//	                and the CLI demo path
//	cmd/oocgraph/ — the generate/swap command-line front end
//
// Quick conceptual example: cm.Generate realizes a degree sequence as a
// pseudo-random edge list, and tfp.Run then rewires that list by edge
// swaps that keep every node's degree, rejecting any swap that would
// create a self-loop or a duplicate edge. cm.Generate itself does not
// remove self-loops or duplicate edges from its output.
//
// Dive into DESIGN.md for the grounding behind every package, and
// SPEC_FULL.md for the full requirements this module implements.
//
//	go get github.com/katalvlaran/oocgraph/cm
package oocgraph
