// Package testutil provides testing utilities for utl.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded generator of random vector operations and a
// reference model with the same boundary semantics as svector.Vector.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(1000, capacity)
//
// # Reference Model
//
//	m := testutil.NewModel(capacity)
//	for _, op := range ops {
//	    m.Apply(op)
//	}
package testutil
