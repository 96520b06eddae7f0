package fixtures

import "errors"

// ErrTooFewNodes is returned when a topology is requested with fewer nodes
// than it can meaningfully realize.
var ErrTooFewNodes = errors.New("fixtures: too few nodes")

// ErrInvalidDegree is returned when RandomRegular is asked for a degree
// sequence no simple graph on n nodes can realize.
var ErrInvalidDegree = errors.New("fixtures: invalid degree")

// ErrConstructFailed is returned when stub-matching exhausts its retry
// budget without finding a simple-graph realization.
var ErrConstructFailed = errors.New("fixtures: construction failed after bounded retries")
