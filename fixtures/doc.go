// Package fixtures builds small, deterministic edge lists and degree
// sequences over gmodel.Node/gmodel.Edge for use by cm/tfp tests and the
// CLI demo path: a cycle, a complete graph, and a stub-matched random
// d-regular graph. Adapted from the teacher's topology-recipe builders:
// same functional-options-panic-on-nil contract, same deterministic
// ID/edge emission order, generalized from string-keyed core.Graph
// vertices to uint64 gmodel.Node ids.
package fixtures
