// Package gmodel defines the value types shared by the out-of-core
// generator and swap engine: nodes, edges, swap descriptors and results,
// and the wire codec used to move edge lists and update masks between
// passes and across process boundaries.
//
// Nothing in this package touches external-memory storage; it is the
// vocabulary the extsort, extpq, merge, cm and tfp packages are built on.
package gmodel
