// Package extsort implements the external-memory sorter primitive (C1):
// an unbounded-insert, sort-once, stream-forward sequence with a fixed
// byte budget regardless of total element count.
//
// A Sorter[T] moves through three phases exactly like the teacher's
// external primitives move through build -> query -> iterate: Insert,
// Sort, then Stream (Peek/Pop/Empty, optionally Rewind back to the start
// of the stream phase). Once the memory budget for buffered elements is
// exceeded, the sorter spills a sorted, compressed run to disk and keeps
// accepting further inserts; Sort performs a bounded-memory k-way merge
// of all spilled runs plus whatever remains buffered.
package extsort
