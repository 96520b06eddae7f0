// Package cm implements the Configuration-Model Materializer (C3): given a
// graphical degree sequence expressed as a stream of placeholder edges
// from an upstream Havel-Hakimi generator, it produces a pseudo-random
// edge list realizing that sequence without ever holding the half-edge set
// in RAM.
//
// Generate is the production path: it expands each placeholder edge into
// two half-edge records with independent random keys drawn from disjoint
// bit-slices of one random word, sorts them by a CRC32C-hashed key so the
// sort order decorrelates from the random word's own bit layout, and
// re-pairs adjacent records into output edges.
//
// GenerateNaive is a supplemented variant, grounded in the original
// implementation's HavelHakimi_ConfigurationModel_Random test path: it
// assigns each half-edge an independent uniformly random 64-bit key with
// no bit-slice trick, for cross-checking degree-sequence preservation
// against an independent implementation.
package cm
