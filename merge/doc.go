// Package merge implements the merged-source iterator (C2): it couples
// one external sorter (static, pre-sorted offline data) with one external
// priority queue (dynamic, online data) under a single comparator and
// exposes the pair as a single ordered stream.
//
// This is a direct translation of the original PQSorterMerger: at each
// step the smaller of the sorter's head and the queue's top is yielded;
// Update must be called after any push into the queue that happened
// without going through Source.Push, since the iterator caches the
// current head for O(1) Peek.
package merge
