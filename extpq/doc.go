// Package extpq implements the external priority queue primitive (C1):
// Push at any time, Top/Pop yielding the minimum under a caller-supplied
// comparator. The queue is an in-memory binary heap; it does not spill to
// disk, and Push returns gmodel.ErrResourceExhausted once the configured
// element capacity (WithCapacity) is reached.
//
// Unlike extsort.Sorter, a Queue never closes its insert phase: TFP's
// passes B and D push newly discovered dependency/existence messages
// while concurrently popping messages addressed to earlier swap ids, so
// insert and extract are interleaved for the whole pass.
package extpq
